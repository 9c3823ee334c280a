// SPDX-License-Identifier: MIT

// Package route is the city-connectivity facade over core, bfs and dfs.
//
// A Manager owns one concurrent core.Graph and answers two questions:
//
//	Connected(a, b) bool      // is there any route between a and b?
//	Route(a, b) []string      // the first fewest-hop route, inclusive of a and b
//
// plus Reachable(a), every endpoint reachable from a, and Components(), the
// groups of mutually connected endpoints.
//
// Names are trimmed and compared case-insensitively. Queries never fail: an
// empty name, a self-query ("Atlanta" vs " atlanta") or an unknown endpoint
// yields false / an empty route without running a search. AddConnection
// likewise never fails; invalid input is logged at Warn level and ignored.
//
// AddConnection, Connected and Route may be called from any number of
// goroutines. A connection is inserted one direction at a time, so a query
// racing with AddConnection(a, b) may briefly find a→b but not b→a.
//
// Stores can be built empty (New) or from a loader.Iterator consumed eagerly
// at construction (NewFromEdges, NewFromList, NewFromFile). A load error is
// fatal for that construction and no Manager is returned.
package route
