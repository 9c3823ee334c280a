// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Vertex, options, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyEndpoint indicates that an endpoint name is empty after trimming.
	ErrEmptyEndpoint = errors.New("core: endpoint name is empty")

	// ErrEndpointNotFound indicates an operation referenced a non-existent endpoint.
	ErrEndpointNotFound = errors.New("core: endpoint not found")

	// ErrLoopNotAllowed indicates an attempt to connect an endpoint to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is one endpoint of the graph together with its neighbor set.
//
// key is the canonical form used for map lookups and equality; name is the
// display form recorded at creation time.
type Vertex struct {
	key  string
	name string

	mu      sync.Mutex                // serializes appends to nbrs and members
	members map[string]struct{}       // canonical keys already present in nbrs
	nbrs    atomic.Pointer[[]*Vertex] // copy-on-write, insertion-ordered
}

// Key returns the canonical (lower-cased) identifier of the vertex.
func (v *Vertex) Key() string { return v.key }

// Name returns the display form of the vertex.
func (v *Vertex) Name() string { return v.name }

// Neighbors returns the current neighbor snapshot in insertion order.
// The slice is shared and must not be modified by the caller.
func (v *Vertex) Neighbors() []*Vertex {
	if p := v.nbrs.Load(); p != nil {
		return *p
	}
	return nil
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger sets the logger used for graph diagnostics.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is the concurrent route graph.
//
// vertices maps canonical key → *Vertex. Vertices are created lazily by AddEdge
// and live for the lifetime of the Graph.
type Graph struct {
	vertices sync.Map
	log      *slog.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{log: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Normalize returns the trimmed display form and the canonical key of name.
func Normalize(name string) (display, key string) {
	display = strings.TrimSpace(name)

	return display, strings.ToLower(display)
}

// SameEndpoint reports whether a and b denote the same endpoint
// (equal after trimming, ignoring case).
func SameEndpoint(a, b string) bool {
	_, ka := Normalize(a)
	_, kb := Normalize(b)

	return ka == kb
}
