// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/core"
)

// NullDepth marks an unassigned depth. It is reserved: SetDepth rejects it.
const NullDepth = -999

// noNext marks a directed edge whose next has not been linked.
const noNext = -1

// DirectedEdge is one traversal direction of an Edge. Directed edges are
// created in pairs by PlanarGraph.AddEdge; the pair occupies ids 2k and
// 2k+1, so the sym of id is id^1.
type DirectedEdge struct {
	g       *PlanarGraph
	id      int
	edge    *Edge
	edgeID  int
	forward bool

	p0, p1   core.Coordinate
	dx, dy   float64
	quadrant int

	label   Label
	depth   [3]int
	visited bool
	next    int
}

func newDirectedEdge(g *PlanarGraph, id, edgeID int, e *Edge, forward bool) *DirectedEdge {
	de := &DirectedEdge{
		g:       g,
		id:      id,
		edge:    e,
		edgeID:  edgeID,
		forward: forward,
		label:   e.Label,
		depth:   [3]int{NullDepth, NullDepth, NullDepth},
		next:    noNext,
	}
	n := e.NumPoints()
	if forward {
		de.p0, de.p1 = e.Coordinate(0), e.Coordinate(1)
	} else {
		de.p0, de.p1 = e.Coordinate(n-1), e.Coordinate(n-2)
		de.label.Flip()
	}
	de.dx, de.dy = de.p1.X-de.p0.X, de.p1.Y-de.p0.Y
	de.quadrant = Quadrant(de.dx, de.dy)
	return de
}

// ID is the arena index of the directed edge.
func (de *DirectedEdge) ID() int { return de.id }

// Edge returns the underlying edge.
func (de *DirectedEdge) Edge() *Edge { return de.edge }

// EdgeID is the arena index of the underlying edge.
func (de *DirectedEdge) EdgeID() int { return de.edgeID }

// IsForward reports whether the directed edge follows its edge's vertex order.
func (de *DirectedEdge) IsForward() bool { return de.forward }

// Sym returns the oppositely directed edge of the same Edge.
func (de *DirectedEdge) Sym() *DirectedEdge { return de.g.des[de.id^1] }

// Next returns the next directed edge of the face ring, or nil before
// PlanarGraph.LinkAllDirectedEdges.
func (de *DirectedEdge) Next() *DirectedEdge {
	if de.next == noNext {
		return nil
	}
	return de.g.des[de.next]
}

// SetNext links this directed edge to next.
func (de *DirectedEdge) SetNext(next *DirectedEdge) { de.next = next.id }

// Coordinate is the origin of the directed edge.
func (de *DirectedEdge) Coordinate() core.Coordinate { return de.p0 }

// DirectedCoordinate is the second point along the direction of travel.
func (de *DirectedEdge) DirectedCoordinate() core.Coordinate { return de.p1 }

// Destination is the last point along the direction of travel.
func (de *DirectedEdge) Destination() core.Coordinate { return de.Sym().p0 }

// Dx and Dy give the initial direction vector.
func (de *DirectedEdge) Dx() float64 { return de.dx }

// Dy see Dx.
func (de *DirectedEdge) Dy() float64 { return de.dy }

// Quadrant of the initial direction.
func (de *DirectedEdge) Quadrant() int { return de.quadrant }

// Node is the origin node.
func (de *DirectedEdge) Node() *Node { return de.g.nodes.Find(de.p0) }

// Label returns the directed edge's own label (a copy of the edge label,
// flipped for backward directed edges). Mutations stay local.
func (de *DirectedEdge) Label() *Label { return &de.label }

// Depth returns the depth at pos, NullDepth when unassigned.
func (de *DirectedEdge) Depth(pos core.Position) int { return de.depth[pos] }

// SetDepth assigns the depth at pos. Assigning the current value again is a
// no-op; assigning a different value, or the reserved NullDepth, is a
// *core.TopologyError.
func (de *DirectedEdge) SetDepth(pos core.Position, d int) error {
	if d == NullDepth {
		return core.NewTopologyError(fmt.Sprintf("reserved depth %d assigned at %s", d, pos), de.p0)
	}
	if cur := de.depth[pos]; cur != NullDepth && cur != d {
		return core.NewTopologyError(fmt.Sprintf("assigned depths do not match (%s: %d vs %d)", pos, cur, d), de.p0)
	}
	de.depth[pos] = d
	return nil
}

// DepthDelta is the edge's depth delta in the direction of travel.
func (de *DirectedEdge) DepthDelta() int {
	if de.forward {
		return de.edge.depthDelta
	}
	return -de.edge.depthDelta
}

// SetEdgeDepths sets the depth at pos (Left or Right) and derives the
// opposite side from the depth delta: Left = Right + DepthDelta.
func (de *DirectedEdge) SetEdgeDepths(pos core.Position, d int) error {
	factor := 1
	if pos == core.Left {
		factor = -1
	}
	opposite := d + de.DepthDelta()*factor
	if err := de.SetDepth(pos, d); err != nil {
		return err
	}
	return de.SetDepth(pos.Opposite(), opposite)
}

// IsVisited reports the visited flag of this directed edge only.
func (de *DirectedEdge) IsVisited() bool { return de.visited }

// SetVisited sets the visited flag of this directed edge only.
func (de *DirectedEdge) SetVisited(v bool) { de.visited = v }

// SetVisitedEdge sets the visited flag of this directed edge and its sym.
func (de *DirectedEdge) SetVisitedEdge(v bool) {
	de.visited = v
	de.Sym().visited = v
}

// IsLineEdge reports whether the edge is a line with respect to both inputs:
// each input either has it in line form, or has it entirely outside an area.
func (de *DirectedEdge) IsLineEdge() bool {
	isLine := de.label.IsLine(0) || de.label.IsLine(1)
	ext0 := !de.label.IsAreaOf(0) || de.label.AllPositionsEqual(0, core.Exterior)
	ext1 := !de.label.IsAreaOf(1) || de.label.AllPositionsEqual(1, core.Exterior)
	return isLine && ext0 && ext1
}

// IsInteriorAreaEdge reports whether both sides of the edge are interior for
// every input that has it in area form.
func (de *DirectedEdge) IsInteriorAreaEdge() bool {
	for i := 0; i < 2; i++ {
		if !de.label.IsAreaOf(i) ||
			de.label.Location(i, core.Left) != core.Interior ||
			de.label.Location(i, core.Right) != core.Interior {
			return false
		}
	}
	return true
}

// CompareDirection orders directed edges leaving the same point by the angle
// of their initial segment, counter-clockwise from +X. Collinear directions
// compare equal.
func (de *DirectedEdge) CompareDirection(o *DirectedEdge) int {
	if de.dx == o.dx && de.dy == o.dy {
		return 0
	}
	switch {
	case de.quadrant > o.quadrant:
		return 1
	case de.quadrant < o.quadrant:
		return -1
	}
	return int(algorithms.Index(o.p0, o.p1, de.p1))
}

// isCanonical reports whether the traversal runs from the lexicographically
// smaller end. For closed edges the second and penultimate points decide.
func (de *DirectedEdge) isCanonical() bool {
	pts := de.edge.pts
	n := len(pts)
	a, b := pts[0], pts[n-1]
	if a.Equals2D(b) && n > 2 {
		a, b = pts[1], pts[n-2]
	}
	if c := a.Compare(b); c != 0 {
		return (c < 0) == de.forward
	}
	return de.forward
}

// compare is the strict total order of a star: direction, then the far
// point of the first segment, then edge id. The id order is reversed for
// non-canonical traversals so that coincident edges are ordered
// consistently at both of their end nodes.
func (de *DirectedEdge) compare(o *DirectedEdge) int {
	if c := de.CompareDirection(o); c != 0 {
		return c
	}
	if c := de.p1.Compare(o.p1); c != 0 {
		return c
	}
	byID := 0
	switch {
	case de.edgeID < o.edgeID:
		byID = -1
	case de.edgeID > o.edgeID:
		byID = 1
	}
	if !de.isCanonical() {
		byID = -byID
	}
	return byID
}

func (de *DirectedEdge) String() string {
	return fmt.Sprintf("de#%d %s->%s %s depth[L=%d R=%d]", de.id, de.p0, de.p1, de.label, de.depth[core.Left], de.depth[core.Right])
}
