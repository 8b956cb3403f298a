// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/core"
)

// Edge is a polyline of the planar graph. Its coordinates are snapped and
// free of consecutive duplicates.
type Edge struct {
	// Label is the edge's location relative to both inputs.
	Label Label

	pts        []core.Coordinate
	env        r2.Rect
	depthDelta int
	isolated   bool
	ei         EdgeIntersectionList
}

// NewEdge builds an edge from pts. Consecutive duplicates are dropped; fewer
// than two distinct points is core.ErrMalformedInput.
func NewEdge(pts []core.Coordinate, label Label) (*Edge, error) {
	clean := core.RemoveRepeated(pts)
	if len(clean) < 2 {
		return nil, fmt.Errorf("graph: edge needs 2 distinct points, got %d: %w", len(clean), core.ErrMalformedInput)
	}
	return &Edge{
		Label:    label,
		pts:      clean,
		env:      core.EnvelopeOf(clean),
		isolated: true,
		ei:       newEdgeIntersectionList(),
	}, nil
}

// Points returns the edge coordinates. The slice must not be modified.
func (e *Edge) Points() []core.Coordinate { return e.pts }

// NumPoints is len(Points()).
func (e *Edge) NumPoints() int { return len(e.pts) }

// Coordinate returns vertex i.
func (e *Edge) Coordinate(i int) core.Coordinate { return e.pts[i] }

// NumSegments is NumPoints()-1.
func (e *Edge) NumSegments() int { return len(e.pts) - 1 }

// IsClosed reports whether the first and last points are equal.
func (e *Edge) IsClosed() bool { return e.pts[0].Equals2D(e.pts[len(e.pts)-1]) }

// Envelope is the bounding rectangle of the edge.
func (e *Edge) Envelope() r2.Rect { return e.env }

// DepthDelta is the change in depth when crossing the edge from its right
// side to its left side: +1 when the left side is interior, -1 when the right
// side is, 0 for line edges.
func (e *Edge) DepthDelta() int { return e.depthDelta }

// SetDepthDelta sets the depth delta.
func (e *Edge) SetDepthDelta(d int) { e.depthDelta = d }

// IsIsolated reports whether the edge met no edge of the other input.
func (e *Edge) IsIsolated() bool { return e.isolated }

// SetIsolated sets the isolated flag.
func (e *Edge) SetIsolated(v bool) { e.isolated = v }

// Intersections returns the edge's intersection list.
func (e *Edge) Intersections() *EdgeIntersectionList { return &e.ei }

// AddIntersections records every intersection point of li on segment
// segIndex. inputIndex selects which of li's two input segments belongs to
// this edge.
func (e *Edge) AddIntersections(li *algorithms.LineIntersector, segIndex, inputIndex int) {
	for i := 0; i < li.IntersectionNum(); i++ {
		e.AddIntersection(li, segIndex, inputIndex, i)
	}
}

// AddIntersection records intersection intIndex of li. A point equal to the
// next vertex is stored as the start of the next segment so that equal
// points always have equal keys.
func (e *Edge) AddIntersection(li *algorithms.LineIntersector, segIndex, inputIndex, intIndex int) {
	pt := li.Intersection(intIndex)
	dist := li.EdgeDistance(inputIndex, intIndex)
	if next := segIndex + 1; next < len(e.pts) && pt.Equals2D(e.pts[next]) {
		segIndex, dist = next, 0
	}
	e.ei.Add(pt, segIndex, dist)
}

// AddEndpoints records the two endpoints as intersections so that
// SplitEdges always covers the whole edge.
func (e *Edge) AddEndpoints() {
	last := len(e.pts) - 1
	e.ei.Add(e.pts[0], 0, 0)
	e.ei.Add(e.pts[last], last, 0)
}

// SplitEdges returns the sub-edges between consecutive intersections.
// Each inherits the label and depth delta. AddEndpoints is called first.
func (e *Edge) SplitEdges() []*Edge {
	e.AddEndpoints()
	items := e.ei.Items()
	out := make([]*Edge, 0, len(items)-1)
	for i := 1; i < len(items); i++ {
		if sub := e.splitEdge(items[i-1], items[i]); sub != nil {
			out = append(out, sub)
		}
	}
	return out
}

func (e *Edge) splitEdge(ei0, ei1 EdgeIntersection) *Edge {
	pts := make([]core.Coordinate, 0, ei1.SegIndex-ei0.SegIndex+2)
	pts = append(pts, ei0.Coord)
	pts = append(pts, e.pts[ei0.SegIndex+1:ei1.SegIndex+1]...)
	lastSegStart := e.pts[ei1.SegIndex]
	if ei1.Dist > 0 || !ei1.Coord.Equals2D(lastSegStart) {
		pts = append(pts, ei1.Coord)
	}
	sub, err := NewEdge(pts, e.Label)
	if err != nil {
		// zero-length piece between coincident intersections
		return nil
	}
	sub.depthDelta = e.depthDelta
	sub.isolated = e.isolated
	return sub
}

func (e *Edge) String() string {
	return fmt.Sprintf("edge %v %s", e.pts, e.Label)
}
