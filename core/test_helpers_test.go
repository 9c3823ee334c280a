// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/routegraph/core"
	"github.com/stretchr/testify/require"
)

// Common endpoint names used across core tests.
const (
	EndpointEmpty = ""
	EndpointBlank = "   "

	Atlanta    = "Atlanta"
	Charlotte  = "Charlotte"
	Richmond   = "Richmond"
	Louisville = "Louisville"
	Miami      = "Miami"
	Boston     = "Boston"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustAddEdges adds every pair to g and fails the test on the first error.
func mustAddEdges(t *testing.T, g *core.Graph, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]), "AddEdge(%q, %q)", p[0], p[1])
	}
}

// chain returns the Atlanta–Charlotte–Richmond–Louisville fixture.
func chain() [][2]string {
	return [][2]string{
		{Atlanta, Charlotte},
		{Charlotte, Richmond},
		{Richmond, Louisville},
	}
}
