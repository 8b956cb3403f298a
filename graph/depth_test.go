// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
)

// interiorOnRight seeds depth from the label of input 0.
func interiorOnRight(de *graph.DirectedEdge) int {
	if de.Label().Location(0, core.Right) == core.Interior {
		return 1
	}
	return 0
}

// squareWithHole builds a clockwise 4x4 shell split into two edges and a
// counter-clockwise hole.
func squareWithHole(t *testing.T, shellDelta2 int) *graph.PlanarGraph {
	t.Helper()
	g := graph.New()

	e1 := mustEdge(t, shellLabel, pt(0, 0), pt(0, 4), pt(4, 4))
	e1.SetDepthDelta(-1)
	e2 := mustEdge(t, shellLabel, pt(4, 4), pt(4, 0), pt(0, 0))
	e2.SetDepthDelta(shellDelta2)

	holeLabel := graph.NewGeomAreaLabel(0, core.Boundary, core.Exterior, core.Interior)
	hole := mustEdge(t, holeLabel, pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2), pt(1, 1))
	hole.SetDepthDelta(-1)

	g.AddEdges([]*graph.Edge{e1, e2, hole})
	return g
}

func TestPropagateDepths_Consistent(t *testing.T) {
	g := squareWithHole(t, -1)
	require.NoError(t, g.PropagateDepths(interiorOnRight))

	for _, de := range g.DirectedEdges() {
		require.NotEqual(t, graph.NullDepth, de.Depth(core.Left), de.String())
		assert.Equal(t, de.DepthDelta(), de.Depth(core.Left)-de.Depth(core.Right), "parity %s", de)
		assert.Equal(t, de.Depth(core.Left), de.Sym().Depth(core.Right), "sym %s", de)

		want := 0
		if de.Label().Location(0, core.Right) == core.Interior {
			want = 1
		}
		assert.Equal(t, want, de.Depth(core.Right), de.String())
	}

	g.LinkAllDirectedEdges()
	require.NoError(t, g.CheckRingDepths())
	rings, err := g.EdgeRings()
	require.NoError(t, err)
	assert.Len(t, rings, 4, "shell inside/outside, hole inside/outside")
}

func TestPropagateDepths_Mismatch(t *testing.T) {
	g := squareWithHole(t, +1)
	err := g.PropagateDepths(interiorOnRight)
	assert.ErrorIs(t, err, core.ErrTopologyInconsistency)
}

func TestEdgeRings_Unlinked(t *testing.T) {
	g := squareWithHole(t, -1)
	_, err := g.EdgeRings()
	assert.ErrorIs(t, err, core.ErrTopologyInconsistency)
}
