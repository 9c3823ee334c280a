// SPDX-License-Identifier: MIT

package route

import (
	"log/slog"

	"github.com/katalvlaran/routegraph/core"
)

// Option configures a Manager at construction.
type Option func(*Manager)

// WithLogger sets the logger for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMetrics records connection and query metrics into mt.
func WithMetrics(mt *Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// WithGraph makes the Manager operate on an existing graph instead of a new one.
func WithGraph(g *core.Graph) Option {
	return func(m *Manager) {
		if g != nil {
			m.graph = g
		}
	}
}

// WithDelimiter sets the record delimiter used by NewFromList and NewFromFile.
// An empty delimiter keeps the default.
func WithDelimiter(d string) Option {
	return func(m *Manager) {
		if d != "" {
			m.delimiter = d
		}
	}
}
