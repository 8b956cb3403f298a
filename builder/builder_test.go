// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/builder"
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/precision"
)

func assertClosedCCW(t *testing.T, ring []core.Coordinate) {
	t.Helper()
	require.GreaterOrEqual(t, len(ring), 4)
	assert.Equal(t, ring[0], ring[len(ring)-1])
	assert.True(t, algorithms.IsCCW(ring), "ring %v is not counter-clockwise", ring)
}

func TestRectangle(t *testing.T) {
	r, err := builder.Rectangle(0, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}, r)
	assertClosedCCW(t, r)
	assert.InDelta(t, 2.0, algorithms.Area(r), 1e-12)

	_, err = builder.Rectangle(1, 0, 1, 5)
	assert.ErrorIs(t, err, builder.ErrInvalidExtent)
}

func TestRegularPolygon(t *testing.T) {
	ring, err := builder.RegularPolygon(6, core.Coordinate{X: 1, Y: 1}, 2)
	require.NoError(t, err)
	assert.Len(t, ring, 7)
	assertClosedCCW(t, ring)
	assert.InDelta(t, 3.0, ring[0].X, 1e-12)
	for _, p := range ring {
		assert.InDelta(t, 2.0, p.Distance(core.Coordinate{X: 1, Y: 1}), 1e-12)
	}

	_, err = builder.RegularPolygon(2, core.Coordinate{}, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RegularPolygon(5, core.Coordinate{}, 0)
	assert.ErrorIs(t, err, builder.ErrInvalidExtent)

	// a tiny polygon collapses at a coarse precision
	_, err = builder.RegularPolygon(8, core.Coordinate{}, 0.01, builder.WithPrecision(precision.MustFixed(10)))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	cells, err := builder.Grid(2, 3, builder.WithExtent(0, 0, 6, 4))
	require.NoError(t, err)
	require.Len(t, cells, 6)
	for _, c := range cells {
		assertClosedCCW(t, c)
		assert.InDelta(t, 4.0, algorithms.Area(c), 1e-12)
	}
	assert.Equal(t, core.Coordinate{X: 2, Y: 0}, cells[1][0])
	assert.Equal(t, core.Coordinate{X: 0, Y: 2}, cells[3][0])

	_, err = builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSegments(t *testing.T) {
	a, err := builder.RandomSegments(25, builder.WithSeed(7), builder.WithExtent(-5, -5, 5, 5))
	require.NoError(t, err)
	b, err := builder.RandomSegments(25, builder.WithRand(rand.New(rand.NewSource(7))), builder.WithExtent(-5, -5, 5, 5))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same output")

	require.Len(t, a, 25)
	for _, s := range a {
		require.Len(t, s, 2)
		assert.False(t, s[0].Equals2D(s[1]))
		for _, p := range s {
			assert.True(t, p.X >= -5 && p.X <= 5 && p.Y >= -5 && p.Y <= 5, "%v outside extent", p)
		}
	}

	_, err = builder.RandomSegments(3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomSegments(0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomWalk(t *testing.T) {
	pm := precision.MustFixed(100)
	lines, err := builder.RandomWalk(5, 30, builder.WithSeed(3), builder.WithExtent(0, 0, 10, 10), builder.WithPrecision(pm))
	require.NoError(t, err)
	require.Len(t, lines, 5)
	for _, l := range lines {
		require.Len(t, l, 31)
		for i, p := range l {
			assert.Equal(t, pm.Snap(p), p)
			assert.True(t, p.X >= 0 && p.X <= 10 && p.Y >= 0 && p.Y <= 10, "%v outside extent", p)
			if i > 0 {
				assert.False(t, p.Equals2D(l[i-1]), "repeated point at %d", i)
				assert.LessOrEqual(t, p.Distance(l[i-1]), 1.02)
			}
		}
	}

	_, err = builder.RandomWalk(1, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomWalk(1, 4)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithPrecision(nil) })
	assert.Panics(t, func() { builder.WithExtent(1, 0, 0, 1) })
	assert.Panics(t, func() { builder.WithExtent(0, 0, 1, 0) })
}
