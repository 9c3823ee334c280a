// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Endpoint lookups and read-only queries.
//
// Determinism:
//   - NeighborIDs() returns display forms in insertion order.
//   - Endpoints() returns display forms sorted lexicographically ascending.
//
// Concurrency:
//   - All methods here are lock-free reads over sync.Map and neighbor snapshots.

package core

import "sort"

// Vertex returns the vertex named name (trimmed, case-insensitive).
// Complexity: O(1).
func (g *Graph) Vertex(name string) (*Vertex, bool) {
	display, key := Normalize(name)
	if display == "" {
		return nil, false
	}
	v, ok := g.vertices.Load(key)
	if !ok {
		return nil, false
	}

	return v.(*Vertex), true
}

// HasEndpoint reports whether name is present in the graph.
// Complexity: O(1).
func (g *Graph) HasEndpoint(name string) bool {
	_, ok := g.Vertex(name)

	return ok
}

// Endpoint returns the display form stored for name.
func (g *Graph) Endpoint(name string) (string, bool) {
	v, ok := g.Vertex(name)
	if !ok {
		return "", false
	}

	return v.name, true
}

// NeighborIDs returns the display forms of name's neighbors in insertion order.
// Returns ErrEmptyEndpoint or ErrEndpointNotFound for bad input.
// The result is a private copy of the current snapshot.
// Complexity: O(deg).
func (g *Graph) NeighborIDs(name string) ([]string, error) {
	if display, _ := Normalize(name); display == "" {
		return nil, ErrEmptyEndpoint
	}
	v, ok := g.Vertex(name)
	if !ok {
		return nil, ErrEndpointNotFound
	}
	nbrs := v.Neighbors()
	out := make([]string, len(nbrs))
	for i, n := range nbrs {
		out[i] = n.name
	}

	return out, nil
}

// Degree returns the number of neighbors of name.
func (g *Graph) Degree(name string) (int, error) {
	if display, _ := Normalize(name); display == "" {
		return 0, ErrEmptyEndpoint
	}
	v, ok := g.Vertex(name)
	if !ok {
		return 0, ErrEndpointNotFound
	}

	return len(v.Neighbors()), nil
}

// Endpoints returns all display forms sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Endpoints() []string {
	out := make([]string, 0)
	g.vertices.Range(func(_, v any) bool {
		out = append(out, v.(*Vertex).name)
		return true
	})
	sort.Strings(out)

	return out
}

// EndpointCount returns the number of endpoints.
// Complexity: O(V).
func (g *Graph) EndpointCount() int {
	n := 0
	g.vertices.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}

// EdgeCount returns the number of undirected connections: directed neighbor
// entries divided by two, so a connection caught between its two insertions
// is not counted.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	entries := 0
	g.vertices.Range(func(_, v any) bool {
		entries += len(v.(*Vertex).Neighbors())
		return true
	})

	return entries / 2
}
