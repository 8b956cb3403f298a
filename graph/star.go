// SPDX-License-Identifier: MIT
// Package: geos/graph
//
// star.go — the ordered fan of directed edges leaving one node.
//
// Contract:
//   • Order is counter-clockwise from +X by initial direction (quadrant,
//     then exact orientation). Equal directions fall back to the far end
//     and edge id, so the order is strict and does not depend on insertion.
//   • Bundles are maximal runs of equal direction. Relate labels each
//     bundle as one edge end.
//   • LinkDirectedEdges and ComputeDepths rely on this order to trace faces
//     and carry depths from one side of an edge to the next.
//
// Errors:
//   • ComputeDepths returns *core.TopologyError when the walk does not
//     return to its starting depth or an edge already holds another depth.
//
// Complexity: insert O(d) for degree d; Bundles, LinkDirectedEdges and
// ComputeDepths O(d).

package graph

import (
	"fmt"
	"sort"

	"github.com/againczz/geos/core"
)

// Star is the list of directed edges leaving a node, kept sorted
// counter-clockwise by direction with a strict tie-break (see
// DirectedEdge.compare). Entries are arena ids.
type Star struct {
	g   *PlanarGraph
	ids []int
}

func (s *Star) insert(de *DirectedEdge) {
	i := sort.Search(len(s.ids), func(i int) bool {
		return s.g.des[s.ids[i]].compare(de) > 0
	})
	s.ids = append(s.ids, 0)
	copy(s.ids[i+1:], s.ids[i:])
	s.ids[i] = de.id
}

// Len is the degree of the node.
func (s *Star) Len() int { return len(s.ids) }

// At returns the i-th directed edge counter-clockwise.
func (s *Star) At(i int) *DirectedEdge { return s.g.des[s.ids[i]] }

// Edges returns the directed edges in order.
func (s *Star) Edges() []*DirectedEdge {
	out := make([]*DirectedEdge, len(s.ids))
	for i, id := range s.ids {
		out[i] = s.g.des[id]
	}
	return out
}

// IndexOf returns the position of de in the star, or -1.
func (s *Star) IndexOf(de *DirectedEdge) int {
	for i, id := range s.ids {
		if id == de.id {
			return i
		}
	}
	return -1
}

// Bundles groups consecutive directed edges with equal direction. Each group
// keeps star order.
func (s *Star) Bundles() [][]*DirectedEdge {
	var out [][]*DirectedEdge
	for i, id := range s.ids {
		de := s.g.des[id]
		if i > 0 {
			last := out[len(out)-1]
			if last[0].CompareDirection(de) == 0 {
				out[len(out)-1] = append(last, de)
				continue
			}
		}
		out = append(out, []*DirectedEdge{de})
	}
	return out
}

// LinkDirectedEdges sets, for every outgoing edge e_i, Next of its sym to
// the following outgoing edge e_{i+1} counter-clockwise. The resulting
// next-cycles trace each face with the face on the right.
func (s *Star) LinkDirectedEdges() {
	n := len(s.ids)
	for i := 0; i < n; i++ {
		in := s.At(i).Sym()
		in.SetNext(s.At((i + 1) % n))
	}
}

// ComputeDepths walks the star counter-clockwise from de, whose depths must
// already be set, assigning Right of each following edge from Left of the
// previous one. Returning to de with a different depth is a
// *core.TopologyError.
func (s *Star) ComputeDepths(de *DirectedEdge) error {
	start := s.IndexOf(de)
	if start < 0 {
		return core.NewTopologyError("directed edge not in star", de.p0)
	}
	curr := de.Depth(core.Left)
	target := de.Depth(core.Right)
	n := len(s.ids)
	for k := 1; k < n; k++ {
		e := s.At((start + k) % n)
		if err := e.SetEdgeDepths(core.Right, curr); err != nil {
			return err
		}
		curr = e.Depth(core.Left)
	}
	if curr != target {
		return core.NewTopologyError(fmt.Sprintf("depth mismatch around node (%d vs %d)", curr, target), de.p0)
	}
	return nil
}
