// SPDX-License-Identifier: MIT

package sweepline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/againczz/geos/builder"
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
	"github.com/againczz/geos/sweepline"
)

type segRef struct{ edge, seg int }

type pair struct{ a, b segRef }

func makePair(a, b segRef) pair {
	if b.edge < a.edge || (b.edge == a.edge && b.seg < a.seg) {
		a, b = b, a
	}
	return pair{a, b}
}

// recorder collects reported pairs and counts duplicates.
type recorder struct {
	ids   map[*graph.Edge]int
	pairs map[pair]int
}

func newRecorder(edges []*graph.Edge) *recorder {
	r := &recorder{ids: map[*graph.Edge]int{}, pairs: map[pair]int{}}
	for i, e := range edges {
		r.ids[e] = i
	}
	return r
}

func (r *recorder) AddIntersections(e0 *graph.Edge, seg0 int, e1 *graph.Edge, seg1 int) {
	r.pairs[makePair(segRef{r.ids[e0], seg0}, segRef{r.ids[e1], seg1})]++
}

func edgesOf(t *testing.T, lines [][]core.Coordinate) []*graph.Edge {
	t.Helper()
	out := make([]*graph.Edge, 0, len(lines))
	for _, l := range lines {
		e, err := graph.NewEdge(l, graph.NewLineLabel(core.Interior))
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

// bruteForce lists every pair of distinct segments with intersecting X
// extents, honouring groups (nil groups means NoGroup for all).
func bruteForce(edges []*graph.Edge, group func(int) int) map[pair]int {
	type flat struct {
		ref segRef
		lo  float64
		hi  float64
		grp int
	}
	var segs []flat
	for i, e := range edges {
		for s := 0; s < e.NumSegments(); s++ {
			iv := core.XInterval(e.Coordinate(s), e.Coordinate(s+1))
			segs = append(segs, flat{segRef{i, s}, iv.Lo, iv.Hi, group(i)})
		}
	}
	out := map[pair]int{}
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			if a.grp != sweepline.NoGroup && a.grp == b.grp {
				continue
			}
			if a.lo <= b.hi && b.lo <= a.hi {
				out[makePair(a.ref, b.ref)]++
			}
		}
	}
	return out
}

// TestComputeIntersections_Complete compares the sweep with a brute-force
// enumeration: same pairs, each exactly once, no self pairs.
func TestComputeIntersections_Complete(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		lines, err := builder.RandomWalk(12, 5, builder.WithSeed(seed), builder.WithExtent(0, 0, 50, 50))
		require.NoError(t, err)
		edges := edgesOf(t, lines)

		idx := sweepline.New()
		idx.Add(edges, sweepline.NoGroup)
		rec := newRecorder(edges)
		idx.ComputeIntersections(rec)

		want := bruteForce(edges, func(int) int { return sweepline.NoGroup })
		assert.Equal(t, want, rec.pairs, "seed %d", seed)
		assert.Equal(t, len(want), idx.Overlaps())
		for p := range rec.pairs {
			assert.NotEqual(t, p.a, p.b, "self pair")
		}
	}
}

func TestComputeIntersections_Groups(t *testing.T) {
	segs, err := builder.RandomSegments(40, builder.WithSeed(9), builder.WithExtent(0, 0, 10, 10))
	require.NoError(t, err)
	edges := edgesOf(t, segs)

	idx := sweepline.New()
	idx.Add(edges[:20], 0)
	idx.Add(edges[20:], 1)
	rec := newRecorder(edges)
	idx.ComputeIntersections(rec)

	want := bruteForce(edges, func(i int) int {
		if i < 20 {
			return 0
		}
		return 1
	})
	assert.Equal(t, want, rec.pairs)
	for p := range rec.pairs {
		assert.True(t, (p.a.edge < 20) != (p.b.edge < 20), "same-group pair %v", p)
	}
}

func TestAddEach_SkipsSameEdge(t *testing.T) {
	edges := edgesOf(t, [][]core.Coordinate{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 0}},
		{{X: 1, Y: -1}, {X: 1, Y: 3}},
	})
	idx := sweepline.New()
	idx.AddEach(edges)
	assert.Equal(t, 4, idx.Len())

	rec := newRecorder(edges)
	idx.ComputeIntersections(rec)
	for p := range rec.pairs {
		assert.NotEqual(t, p.a.edge, p.b.edge)
	}
	// the vertical segment overlaps the first and last segment of the ring
	assert.Len(t, rec.pairs, 2)
}

func TestComputeIntersections_TouchingExtents(t *testing.T) {
	edges := edgesOf(t, [][]core.Coordinate{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1, Y: 5}, {X: 1, Y: 6}},
		{{X: 2, Y: 0}, {X: 3, Y: 0}},
	})
	idx := sweepline.New()
	idx.Add(edges, sweepline.NoGroup)
	rec := newRecorder(edges)
	idx.ComputeIntersections(rec)

	assert.Equal(t, map[pair]int{makePair(segRef{0, 0}, segRef{1, 0}): 1}, rec.pairs)
}
