// SPDX-License-Identifier: MIT

// Package core provides the concurrent, in-memory route graph: an undirected graph
// of named endpoints (cities) whose adjacency can grow while it is being traversed.
//
// The Graph G = (V,E) has a deliberately small surface:
//
//   - Endpoints are identified by name. Names are trimmed and compared
//     case-insensitively; the canonical key is strings.ToLower(strings.TrimSpace(name)).
//   - The display form of an endpoint is the trimmed spelling used by the first
//     insertion that created it. It never changes afterwards.
//   - Every endpoint owns an insertion-ordered, duplicate-free neighbor set.
//     Insertion order matters: traversals visit neighbors in that order, which
//     makes shortest-route selection deterministic.
//   - Self-loops and empty names are rejected. Nothing is ever removed.
//
// Concurrency model:
//
//	– The endpoint catalog is a sync.Map; lookups and first-time insertions never
//	  take a graph-wide lock.
//	– Each neighbor set is a copy-on-write slice published through atomic.Pointer.
//	  Appends are serialized per endpoint; readers iterate a snapshot and never
//	  observe a torn slice, and an append during iteration is simply not seen.
//	– AddEdge(a, b) performs two independent insertions, b into a's set and then
//	  a into b's set. Between them a concurrent reader can see a→b but not b→a.
//	  That window is part of the contract, not a defect: no operation needs
//	  exclusive access to the whole graph.
//
// Core Methods:
//
//	AddEdge(a, b string) error            // O(1) amortized + O(deg) copy
//	HasEndpoint(name string) bool         // O(1)
//	Endpoint(name string) (string, bool)  // O(1), display form
//	NeighborIDs(name string) ([]string, error) // O(deg), insertion order
//	Endpoints() []string                  // O(V·log V), sorted display forms
//	EndpointCount() int                   // O(V)
//	EdgeCount() int                       // O(V)
//	Degree(name string) (int, error)      // O(1)
//
// Errors:
//
//	ErrEmptyEndpoint    – name is empty after trimming
//	ErrLoopNotAllowed   – both names denote the same endpoint
//	ErrEndpointNotFound – name is not in the graph
package core
