// Package core_test validates the query layer: point lookups, the comma-ok
// variant, live views, and mutual-neighbor enumeration.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshnet/core"
)

func TestOutlinksInlinks_Errors(t *testing.T) {
	g := core.NewGraph[string, int64]()
	_, err := g.Outlinks("Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Inlinks("Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestLinkData_ErrorTaxonomy(t *testing.T) {
	g := core.NewGraph[string, int64]()
	require.NoError(t, g.AddLink("A", "B", 5))

	// Present link.
	data, err := g.LinkData("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(5), data)

	// Both endpoints exist, link does not: link-level error.
	_, err = g.LinkData("B", "A")
	require.ErrorIs(t, err, core.ErrLinkNotFound)

	// A missing endpoint is a node-level error, not a link-level one.
	_, err = g.LinkData("A", "Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.LinkData("Z", "B")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestTryLinkData(t *testing.T) {
	g := core.NewGraph[string, int64]()
	require.NoError(t, g.AddLink("A", "B", 5))

	data, ok := g.TryLinkData("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(5), data)

	// Absence — of the link or of a whole endpoint — is a boolean, no error.
	_, ok = g.TryLinkData("B", "A")
	assert.False(t, ok)
	_, ok = g.TryLinkData("Z", "B")
	assert.False(t, ok)
}

func TestOutlinks_LiveView(t *testing.T) {
	g := core.NewGraph[string, int64]()
	require.NoError(t, g.AddLink("A", "B", 1))

	out, err := g.Outlinks("A")
	require.NoError(t, err)
	require.Len(t, out, 1)

	// The returned slice aliases internal storage: a payload update through
	// the API is visible through the previously fetched view.
	require.NoError(t, g.SetLinkData("A", "B", 9))
	assert.Equal(t, int64(9), out[0].Data)
}

func TestNodes_Unordered(t *testing.T) {
	g := core.NewGraph[int, int64]()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddNode(i))
	}
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, g.Nodes())
}

func TestNeighbors_MutualOnly(t *testing.T) {
	g := core.NewGraph[string, int64]()
	require.NoError(t, g.AddDual("A", "B", 1)) // mutual
	require.NoError(t, g.AddLink("A", "C", 1)) // one-way out
	require.NoError(t, g.AddLink("D", "A", 1)) // one-way in

	peers, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, peers)

	// Symmetric from B's side.
	peers, err = g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, peers)

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNeighbors_IgnoresLoopbacks(t *testing.T) {
	g := core.NewGraph[int, int64]()
	require.NoError(t, g.AddLink(0, 0, 1))

	peers, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.NotContains(t, peers, 0)
	assert.Empty(t, peers)
}
