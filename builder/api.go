// SPDX-License-Identifier: MIT
// Package: routegraph/builder
//
// api.go: public entry points.
//
// Contract:
//   • Build(bopts, cons...) resolves options once and runs constructors in order.
//   • Same inputs, options, seed and constructor order ⇒ identical edge lists.
//   • Constructors return sentinel errors wrapped with their method name.

// Package builder generates synthetic route networks (paths, cycles, stars,
// grids, complete and random sparse networks) as ordered edge lists.
// They feed route.NewFromEdges, core.Graph, benchmarks and stress tests.
package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/loader"
)

// Constructor emits connections for one topology using the resolved config.
type Constructor func(cfg builderConfig, emit func(a, b string)) error

// Build resolves bopts and runs every constructor in order, returning all
// emitted edges. Any constructor error is wrapped with "Build: %w".
func Build(bopts []BuilderOption, cons ...Constructor) ([]loader.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var (
		edges []loader.Edge
		bad   string
	)
	emit := func(a, b string) {
		if bad == "" && (strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" || core.SameEndpoint(a, b)) {
			bad = fmt.Sprintf("%q–%q", a, b)
		}
		edges = append(edges, loader.NewEdge(a, b))
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(cfg, emit); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if bad != "" {
			return nil, fmt.Errorf("Build: unusable connection %s from name scheme: %w", bad, ErrConstructFailed)
		}
	}

	return edges, nil
}

// BuildGraph builds the edges and adds them to a new core.Graph.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	edges, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph(gopts...)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Records renders edges as delimiter-separated records that loader.NewList
// and loader.Open accept.
func Records(edges []loader.Edge, delimiter string) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From + delimiter + e.To
	}

	return out
}
