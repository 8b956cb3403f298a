// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/againczz/geos/core"
)

// PropagateDepths assigns Left/Right depths to every directed edge.
//
// Implementation:
//   - Stage 1: clear visited flags on every edge pair.
//   - Stage 2: for each connected component (first node in coordinate
//     order), seed the first edge of the star with Right = seed(de) and copy
//     the depths to its sym.
//   - Stage 3: breadth-first over nodes; at each node start from an edge
//     whose depths are known, walk the star (Star.ComputeDepths) and copy
//     depths to every sym.
//
// Errors:
//   - *core.TopologyError on any conflicting assignment or mismatch.
//
// Complexity: O(V + E) plus star walks.
func (g *PlanarGraph) PropagateDepths(seed func(*DirectedEdge) int) error {
	for i := 0; i < len(g.des); i += 2 {
		g.des[i].SetVisitedEdge(false)
	}
	seen := bitset.New(uint(g.nodes.n))

	var err error
	g.nodes.Ascend(func(n *Node) bool {
		if seen.Test(uint(n.id)) || n.star.Len() == 0 {
			return true
		}
		err = g.propagateComponent(n, seed, seen)
		return err == nil
	})
	return err
}

func (g *PlanarGraph) propagateComponent(start *Node, seed func(*DirectedEdge) int, seen *bitset.BitSet) error {
	first := start.star.At(0)
	if err := first.SetEdgeDepths(core.Right, seed(first)); err != nil {
		return err
	}
	if err := copySymDepths(first); err != nil {
		return err
	}
	first.SetVisited(true)

	queue := []*Node{start}
	seen.Set(uint(start.id))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if err := computeNodeDepth(n); err != nil {
			return err
		}
		for _, de := range n.star.Edges() {
			sym := de.Sym()
			if sym.visited {
				continue
			}
			adj := g.nodes.Find(sym.p0)
			if !seen.Test(uint(adj.id)) {
				seen.Set(uint(adj.id))
				queue = append(queue, adj)
			}
		}
	}
	return nil
}

func computeNodeDepth(n *Node) error {
	var startEdge *DirectedEdge
	for _, de := range n.star.Edges() {
		if de.visited || de.Sym().visited {
			startEdge = de
			break
		}
	}
	if startEdge == nil {
		return core.NewTopologyError("unable to find edge to compute depths", n.coord)
	}
	if err := n.star.ComputeDepths(startEdge); err != nil {
		return err
	}
	for _, de := range n.star.Edges() {
		de.visited = true
		if err := copySymDepths(de); err != nil {
			return err
		}
	}
	return nil
}

func copySymDepths(de *DirectedEdge) error {
	sym := de.Sym()
	if err := sym.SetDepth(core.Left, de.depth[core.Right]); err != nil {
		return err
	}
	return sym.SetDepth(core.Right, de.depth[core.Left])
}
