// SPDX-License-Identifier: MIT

package route

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values used by Metrics.
const (
	resultAdded    = "added"
	resultRejected = "rejected"

	queryConnected = "connected"
	queryRoute     = "route"

	resultFound    = "found"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
)

// Metrics holds the Prometheus collectors of a Manager.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	connections   *prometheus.CounterVec
	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	routeLength   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Registering twice with the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// connections counts AddConnection calls by result
		connections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "routegraph_connections_total",
			Help: "Total AddConnection calls by result",
		}, []string{"result"}),

		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "routegraph_queries_total",
			Help: "Total route queries by query and result",
		}, []string{"query", "result"}),

		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "routegraph_query_duration_seconds",
			Help:    "Route query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"query"}),

		routeLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "routegraph_route_hops",
			Help:    "Number of hops in routes returned by Route",
			Buckets: prometheus.LinearBuckets(1, 1, 12),
		}),
	}
}

func (mt *Metrics) connection(result string) {
	if mt == nil {
		return
	}
	mt.connections.WithLabelValues(result).Inc()
}

func (mt *Metrics) query(query, result string, started time.Time) {
	if mt == nil {
		return
	}
	mt.queries.WithLabelValues(query, result).Inc()
	mt.queryDuration.WithLabelValues(query).Observe(time.Since(started).Seconds())
}

func (mt *Metrics) routeHops(hops int) {
	if mt == nil {
		return
	}
	mt.routeLength.Observe(float64(hops))
}
