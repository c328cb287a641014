// Package builder_test validates the topology constructors: parameter
// validation, produced shapes, payload wiring, and seed determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshnet/builder"
	"github.com/katalvlaran/meshnet/core"
)

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrNilConstructor)
}

func TestLine_Shape(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Line(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.LinkCount())
	for i := 0; i < 4; i++ {
		assert.True(t, g.HasLink(i, i+1))
		assert.False(t, g.HasLink(i+1, i), "a line is one-way")
	}
}

func TestLine_TooFewNodes(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Line(1))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestRing_Shape(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Ring(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.LinkCount())
	assert.True(t, g.HasLink(3, 0), "ring closes back to 0")
}

func TestStar_Shape(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Star(4))
	require.NoError(t, err)

	assert.Equal(t, 6, g.LinkCount()) // 3 dual pairs
	peers, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, peers)

	// Leaves are mutual with the center only.
	peers, err = g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, peers)
}

func TestComplete_Shape(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Complete(4))
	require.NoError(t, err)

	assert.Equal(t, 12, g.LinkCount()) // n(n-1) directed links
	for i := 0; i < 4; i++ {
		peers, err := g.Neighbors(i)
		require.NoError(t, err)
		assert.Len(t, peers, 3)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.Build(nil, nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, empty.NodeCount())
	assert.Equal(t, 0, empty.LinkCount())

	full, err := builder.Build(nil, nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 30, full.LinkCount()) // every ordered pair

	_, err = builder.Build(nil, nil, builder.RandomSparse(6, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	build := func() *core.Graph[int, int64] {
		g, err := builder.Build(nil, []builder.Option{builder.WithSeed(42)}, builder.RandomSparse(10, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()

	require.Equal(t, a.LinkCount(), b.LinkCount())
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			assert.Equal(t, a.HasLink(i, j), b.HasLink(i, j), "link %d→%d differs across runs", i, j)
		}
	}
}

func TestWithPayload(t *testing.T) {
	g, err := builder.Build(nil,
		[]builder.Option{builder.WithPayload(func(from, to int) int64 { return int64(from*10 + to) })},
		builder.Line(3),
	)
	require.NoError(t, err)

	data, err := g.LinkData(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(12), data)
}

func TestBuild_ComposedConstructors(t *testing.T) {
	// An isolated node set followed by a line over the same nodes:
	// constructors tolerate nodes admitted by an earlier step.
	g, err := builder.Build(nil, nil,
		builder.RandomSparse(5, 0),
		builder.Line(5),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.LinkCount())
	assert.True(t, g.HasLink(3, 4))
}
