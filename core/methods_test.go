// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/routegraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddEdgeRejectsInvalid covers empty names and self-loops in every spelling.
func TestGraph_AddEdgeRejectsInvalid(t *testing.T) {
	g := core.NewGraph()

	cases := []struct {
		name string
		a, b string
		want error
	}{
		{"empty first", EndpointEmpty, Atlanta, core.ErrEmptyEndpoint},
		{"empty second", Atlanta, EndpointEmpty, core.ErrEmptyEndpoint},
		{"blank", EndpointBlank, Atlanta, core.ErrEmptyEndpoint},
		{"loop", Atlanta, Atlanta, core.ErrLoopNotAllowed},
		{"loop case", Atlanta, "aTLANTA", core.ErrLoopNotAllowed},
		{"loop whitespace", " Atlanta ", "atlanta", core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddEdge(tc.a, tc.b), tc.want)
		})
	}
	assert.Zero(t, g.EndpointCount(), "rejected edges must not create endpoints")
}

// TestGraph_AddEdgeSymmetric checks both directions are recorded after AddEdge returns.
func TestGraph_AddEdgeSymmetric(t *testing.T) {
	g := core.NewGraph()
	mustAddEdges(t, g, [2]string{Atlanta, Charlotte})

	nA, err := g.NeighborIDs(Atlanta)
	require.NoError(t, err)
	nC, err := g.NeighborIDs(Charlotte)
	require.NoError(t, err)

	assert.Equal(t, []string{Charlotte}, nA)
	assert.Equal(t, []string{Atlanta}, nC)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.EndpointCount())
}

// TestGraph_AddEdgeIdempotent re-adds a connection in both orientations and spellings.
func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := core.NewGraph()
	mustAddEdges(t, g,
		[2]string{Atlanta, Charlotte},
		[2]string{Atlanta, Charlotte},
		[2]string{Charlotte, Atlanta},
		[2]string{" atlanta", "CHARLOTTE "},
	)

	deg, err := g.Degree(Atlanta)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_NeighborInsertionOrder anchors the ordering contract used by route search.
func TestGraph_NeighborInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	mustAddEdges(t, g,
		[2]string{Atlanta, Miami},
		[2]string{Atlanta, Charlotte},
		[2]string{Boston, Atlanta},
		[2]string{Atlanta, Miami},
	)

	got, err := g.NeighborIDs(Atlanta)
	require.NoError(t, err)
	assert.Equal(t, []string{Miami, Charlotte, Boston}, got)
}

// TestGraph_DisplayFormIsFirstSpelling fixes the normalization policy:
// one vertex per case-insensitive name, displayed as first inserted.
func TestGraph_DisplayFormIsFirstSpelling(t *testing.T) {
	g := core.NewGraph()
	mustAddEdges(t, g,
		[2]string{"  Atlanta ", Charlotte},
		[2]string{"ATLANTA", Miami},
	)

	name, ok := g.Endpoint("atlanta")
	require.True(t, ok)
	assert.Equal(t, Atlanta, name)
	assert.Equal(t, []string{Atlanta, Charlotte, Miami}, g.Endpoints())

	got, err := g.NeighborIDs("aTlAnTa")
	require.NoError(t, err)
	assert.Equal(t, []string{Charlotte, Miami}, got)
}

// TestGraph_Lookups covers HasEndpoint/NeighborIDs/Degree on missing and empty names.
func TestGraph_Lookups(t *testing.T) {
	g := core.NewGraph()
	mustAddEdges(t, g, chain()...)

	assert.True(t, g.HasEndpoint(" richmond "))
	assert.False(t, g.HasEndpoint("Omaha"))
	assert.False(t, g.HasEndpoint(EndpointEmpty))

	_, err := g.NeighborIDs("Omaha")
	assert.ErrorIs(t, err, core.ErrEndpointNotFound)
	_, err = g.NeighborIDs(EndpointBlank)
	assert.ErrorIs(t, err, core.ErrEmptyEndpoint)
	_, err = g.Degree("Omaha")
	assert.ErrorIs(t, err, core.ErrEndpointNotFound)

	deg, err := g.Degree(Charlotte)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	assert.Equal(t, 3, g.EdgeCount())
}

// TestGraph_NeighborIDsIsCopy ensures callers cannot corrupt the stored snapshot.
func TestGraph_NeighborIDsIsCopy(t *testing.T) {
	g := core.NewGraph()
	mustAddEdges(t, g, [2]string{Atlanta, Charlotte})

	got, err := g.NeighborIDs(Atlanta)
	require.NoError(t, err)
	got[0] = "Mutated"

	again, err := g.NeighborIDs(Atlanta)
	require.NoError(t, err)
	assert.Equal(t, []string{Charlotte}, again)
}

// TestSameEndpoint covers the canonical equality helper.
func TestSameEndpoint(t *testing.T) {
	assert.True(t, core.SameEndpoint("Atlanta", " atlanta\t"))
	assert.True(t, core.SameEndpoint("", "  "))
	assert.False(t, core.SameEndpoint("Atlanta", "Atlantis"))

	display, key := core.Normalize("  St. Louis ")
	assert.Equal(t, "St. Louis", display)
	assert.Equal(t, "st. louis", key)
}
