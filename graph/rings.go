// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/againczz/geos/core"
)

// EdgeRings walks the next-cycles created by LinkAllDirectedEdges. Each
// ring lists the directed edges that have the same face on their right.
// A missing link or a walk that does not return to its start is a
// *core.TopologyError.
func (g *PlanarGraph) EdgeRings() ([][]*DirectedEdge, error) {
	visited := bitset.New(uint(len(g.des)))
	var rings [][]*DirectedEdge
	for _, start := range g.des {
		if visited.Test(uint(start.id)) {
			continue
		}
		var ring []*DirectedEdge
		de := start
		for {
			if visited.Test(uint(de.id)) {
				return nil, core.NewTopologyError("edge ring does not close", de.p0)
			}
			visited.Set(uint(de.id))
			ring = append(ring, de)
			next := de.Next()
			if next == nil {
				return nil, core.NewTopologyError("directed edge has no next", de.p0)
			}
			if next == start {
				break
			}
			de = next
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// CheckRingDepths verifies that all directed edges of every face ring agree
// on the depth of the face.
func (g *PlanarGraph) CheckRingDepths() error {
	rings, err := g.EdgeRings()
	if err != nil {
		return err
	}
	for _, ring := range rings {
		want := ring[0].depth[core.Right]
		for _, de := range ring[1:] {
			if de.depth[core.Right] != want {
				return core.NewTopologyError(
					fmt.Sprintf("face depth mismatch (%d vs %d)", de.depth[core.Right], want), de.p0)
			}
		}
	}
	return nil
}
