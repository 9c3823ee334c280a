// SPDX-License-Identifier: MIT

package route

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dfs"
	"github.com/katalvlaran/routegraph/loader"
)

// Manager answers connectivity and route queries over a concurrent route graph.
// It is safe for concurrent use.
type Manager struct {
	graph     *core.Graph
	log       *slog.Logger
	metrics   *Metrics
	delimiter string
}

// New returns a Manager over an empty graph.
func New(opts ...Option) *Manager {
	m := &Manager{log: slog.Default(), delimiter: loader.DefaultDelimiter}
	for _, opt := range opts {
		opt(m)
	}
	if m.graph == nil {
		m.graph = core.NewGraph(core.WithLogger(m.log))
	}

	return m
}

// NewFromEdges returns a Manager holding every edge produced by it, added in
// iteration order. The iterator is drained before NewFromEdges returns.
// Any iterator error aborts construction and is returned wrapped; the
// partially built graph is discarded.
func NewFromEdges(it loader.Iterator, opts ...Option) (*Manager, error) {
	m := New(opts...)
	if err := m.load(it); err != nil {
		return nil, err
	}

	return m, nil
}

// NewFromList builds a Manager from delimiter-separated records.
func NewFromList(records []string, opts ...Option) (*Manager, error) {
	m := New(opts...)
	if err := m.load(loader.NewList(records, loader.WithDelimiter(m.delimiter))); err != nil {
		return nil, err
	}

	return m, nil
}

// NewFromFile builds a Manager from a line-oriented route file.
// A missing file yields an error matching loader.ErrSourceNotFound.
func NewFromFile(path string, opts ...Option) (*Manager, error) {
	m := New(opts...)
	f, err := loader.Open(path, loader.WithDelimiter(m.delimiter))
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}
	defer f.Close()

	if err := m.load(f); err != nil {
		return nil, err
	}

	return m, nil
}

// load drains it into the graph.
func (m *Manager) load(it loader.Iterator) error {
	n := 0
	for it.Next() {
		e := it.Edge()
		m.AddConnection(e.From, e.To)
		n++
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("route: load edges: %w", err)
	}
	m.log.Info("route graph loaded",
		"edges_read", n,
		"endpoints", m.graph.EndpointCount(),
		"connections", m.graph.EdgeCount(),
	)

	return nil
}

// Graph returns the underlying graph.
func (m *Manager) Graph() *core.Graph { return m.graph }

// AddConnection connects a and b in both directions.
//
// Empty names and self-connections are not errors: they are logged and
// ignored. The two directions are inserted one after the other, so a
// concurrent query may observe only a→b for a short while.
func (m *Manager) AddConnection(a, b string) {
	if err := m.graph.AddEdge(a, b); err != nil {
		m.log.Warn("connection ignored", "source", a, "destination", b, "reason", err)
		m.metrics.connection(resultRejected)
		return
	}
	m.metrics.connection(resultAdded)
}

// Connected reports whether a route exists between a and b.
// An endpoint is never connected to itself.
func (m *Manager) Connected(a, b string) bool {
	started := time.Now()
	path, result := m.find(a, b)
	m.metrics.query(queryConnected, result, started)

	return len(path) > 0
}

// Route returns the first fewest-hop route from a to b, inclusive of both,
// using display names. It returns an empty, non-nil slice when either name is
// empty or unknown, when a and b are the same endpoint, or when no route exists.
func (m *Manager) Route(a, b string) []string {
	started := time.Now()
	path, result := m.find(a, b)
	m.metrics.query(queryRoute, result, started)
	if len(path) == 0 {
		return []string{}
	}
	m.metrics.routeHops(len(path) - 1)

	return path
}

// Reachable returns every endpoint reachable from a, a included, in
// breadth-first order. Unknown or empty names yield an empty slice.
func (m *Manager) Reachable(a string) []string {
	res, err := bfs.BFS(m.graph, a)
	if err != nil {
		m.log.Debug("reachable query rejected", "endpoint", a, "reason", err)
		return []string{}
	}

	return res.Order
}

// Components returns the groups of mutually connected endpoints, each sorted,
// ordered by their first member.
func (m *Manager) Components() [][]string {
	comps, err := dfs.Components(m.graph)
	if err != nil {
		m.log.Error("component search failed", "error", err)
		return [][]string{}
	}

	return comps
}

// find validates both names and runs the route search.
// The second return value is the metrics result label.
func (m *Manager) find(a, b string) ([]string, string) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" || core.SameEndpoint(a, b) {
		m.log.Debug("route query rejected", "source", a, "destination", b)
		return nil, resultInvalid
	}
	if !m.graph.HasEndpoint(a) || !m.graph.HasEndpoint(b) {
		return nil, resultNotFound
	}

	path, err := bfs.ShortestPath(m.graph, a, b)
	switch {
	case err == nil:
		return path, resultFound
	case errors.Is(err, bfs.ErrNoRoute):
		return nil, resultNotFound
	default:
		m.log.Error("route search failed", "source", a, "destination", b, "error", err)
		return nil, resultNotFound
	}
}
