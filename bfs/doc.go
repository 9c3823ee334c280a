// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal and fewest-hop route search
// over a core.Graph.
//
// What
//
//   - ShortestPath(g, from, to) returns the first shortest route discovered by a
//     queue-of-paths BFS, inclusive of both endpoints, as display names.
//   - BFS(g, start) returns a BFSResult with the visit Order, Depth and Parent
//     links of everything reachable from start.
//   - Both accept the same functional options:
//   - WithContext      (optional cancellation; the default never cancels)
//   - WithMaxDepth     (d>0 limits hops, d==0 means no limit)
//   - WithFilterNeighbor (skip curr→neighbor steps)
//   - WithOnEnqueue / WithOnDequeue / WithOnVisit hooks
//
// Determinism
//
//	Neighbors are expanded in the insertion order kept by core.Graph, so for a
//	fixed history of AddEdge calls the same query always returns the same
//	route. Among several routes of equal length the first one found wins.
//
// Concurrency
//
//	Searches may run while other goroutines add edges. Each vertex's neighbors
//	are read from a snapshot, so a concurrent append is either fully visible
//	or not visible at all to the running search. A connection caught between
//	its two directional inserts may be usable in one direction only.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per call, plus path copies for ShortestPath
//   - Memory: O(V) for visited set and queue
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNotFound       if the start endpoint does not exist.
//   - ErrTargetNotFound      if the target endpoint does not exist.
//   - ErrSameEndpoint        if start and target denote the same endpoint.
//   - ErrNoRoute             if the target is unreachable.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
