// SPDX-License-Identifier: MIT

package algorithms

import (
	"math"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/precision"
)

// IntersectionKind classifies the last computed intersection.
type IntersectionKind int

const (
	// NoIntersection - the inputs are disjoint.
	NoIntersection IntersectionKind = iota
	// PointIntersection - the inputs meet in a single point.
	PointIntersection
	// CollinearIntersection - the segments overlap along a sub-segment.
	CollinearIntersection
)

// LineIntersector computes the intersection of two segments (or of a point
// and a segment) and keeps the result until the next computation.
//
// The zero value uses floating precision. Set Precision to snap computed
// intersection points; input vertices are assumed to be snapped already.
// A LineIntersector is not safe for concurrent use.
type LineIntersector struct {
	// Precision snaps computed intersection points. Nil means floating.
	Precision *precision.Model

	kind     IntersectionKind
	proper   bool
	input    [2][2]core.Coordinate
	intPt    [2]core.Coordinate
	pointOps bool
}

// ComputePointIntersection tests whether p lies on segment p1-p2.
// The result is proper when p is not one of the endpoints.
func (li *LineIntersector) ComputePointIntersection(p, p1, p2 core.Coordinate) {
	li.proper = false
	li.kind = NoIntersection
	li.pointOps = true
	if !core.EnvelopeContains(core.SegmentEnvelope(p1, p2), p) {
		return
	}
	if Index(p1, p2, p) == Collinear && Index(p2, p1, p) == Collinear {
		li.proper = !p.Equals2D(p1) && !p.Equals2D(p2)
		li.intPt[0] = p
		li.kind = PointIntersection
	}
}

// ComputeIntersection intersects segments p1-p2 and q1-q2.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 core.Coordinate) {
	li.pointOps = false
	li.input = [2][2]core.Coordinate{{p1, p2}, {q1, q2}}
	li.kind = li.compute(p1, p2, q1, q2)
}

func (li *LineIntersector) compute(p1, p2, q1, q2 core.Coordinate) IntersectionKind {
	li.proper = false
	if !core.EnvelopesIntersect(core.SegmentEnvelope(p1, p2), core.SegmentEnvelope(q1, q2)) {
		return NoIntersection
	}

	pq1 := Index(p1, p2, q1)
	pq2 := Index(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return NoIntersection
	}
	qp1 := Index(q1, q2, p1)
	qp2 := Index(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return NoIntersection
	}

	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		return li.computeCollinear(p1, p2, q1, q2)
	}

	// An endpoint lies on the other segment. Prefer an exact shared
	// endpoint so that the result is an input vertex.
	if pq1 == 0 || pq2 == 0 || qp1 == 0 || qp2 == 0 {
		switch {
		case p1.Equals2D(q1) || p1.Equals2D(q2):
			li.intPt[0] = p1
		case p2.Equals2D(q1) || p2.Equals2D(q2):
			li.intPt[0] = p2
		case pq1 == 0:
			li.intPt[0] = q1
		case pq2 == 0:
			li.intPt[0] = q2
		case qp1 == 0:
			li.intPt[0] = p1
		default:
			li.intPt[0] = p2
		}
		return PointIntersection
	}

	li.proper = true
	li.intPt[0] = li.properIntersection(p1, p2, q1, q2)
	return PointIntersection
}

func (li *LineIntersector) computeCollinear(p1, p2, q1, q2 core.Coordinate) IntersectionKind {
	pEnv := core.SegmentEnvelope(p1, p2)
	qEnv := core.SegmentEnvelope(q1, q2)
	p1q1p2 := core.EnvelopeContains(pEnv, q1)
	p1q2p2 := core.EnvelopeContains(pEnv, q2)
	q1p1q2 := core.EnvelopeContains(qEnv, p1)
	q1p2q2 := core.EnvelopeContains(qEnv, p2)

	set := func(a, b core.Coordinate, single bool) IntersectionKind {
		li.intPt[0], li.intPt[1] = a, b
		if single {
			return PointIntersection
		}
		return CollinearIntersection
	}

	switch {
	case p1q1p2 && p1q2p2:
		return set(q1, q2, false)
	case q1p1q2 && q1p2q2:
		return set(p1, p2, false)
	case p1q1p2 && q1p1q2:
		return set(q1, p1, q1.Equals2D(p1) && !p1q2p2 && !q1p2q2)
	case p1q1p2 && q1p2q2:
		return set(q1, p2, q1.Equals2D(p2) && !p1q2p2 && !q1p1q2)
	case p1q2p2 && q1p1q2:
		return set(q2, p1, q2.Equals2D(p1) && !p1q1p2 && !q1p2q2)
	case p1q2p2 && q1p2q2:
		return set(q2, p2, q2.Equals2D(p2) && !p1q1p2 && !q1p1q2)
	}
	return NoIntersection
}

// properIntersection computes the crossing point of two properly
// intersecting segments, falling back to the nearest endpoint when the
// computed point is unusable, and snaps it.
func (li *LineIntersector) properIntersection(p1, p2, q1, q2 core.Coordinate) core.Coordinate {
	pt, err := normalizedIntersection(p1, p2, q1, q2)
	if err != nil || !li.inSegmentEnvelopes(pt) {
		pt = nearestEndpoint(p1, p2, q1, q2)
	}
	if li.Precision != nil {
		pt = li.Precision.Snap(pt)
	}
	return pt
}

func (li *LineIntersector) inSegmentEnvelopes(pt core.Coordinate) bool {
	return core.EnvelopeContains(core.SegmentEnvelope(li.input[0][0], li.input[0][1]), pt) &&
		core.EnvelopeContains(core.SegmentEnvelope(li.input[1][0], li.input[1][1]), pt)
}

// Kind returns the classification of the last computation.
func (li *LineIntersector) Kind() IntersectionKind { return li.kind }

// HasIntersection reports whether the last computation found any intersection.
func (li *LineIntersector) HasIntersection() bool { return li.kind != NoIntersection }

// IntersectionNum is 0, 1 (point) or 2 (collinear overlap endpoints).
func (li *LineIntersector) IntersectionNum() int { return int(li.kind) }

// Intersection returns intersection point i, 0 <= i < IntersectionNum().
func (li *LineIntersector) Intersection(i int) core.Coordinate { return li.intPt[i] }

// IsProper reports whether the last intersection was a single point interior
// to both segments (for segment pairs) or interior to the segment (for
// point tests).
func (li *LineIntersector) IsProper() bool { return li.HasIntersection() && li.proper }

// IsIntersection reports whether pt is one of the computed intersection points.
func (li *LineIntersector) IsIntersection(pt core.Coordinate) bool {
	for i := 0; i < li.IntersectionNum(); i++ {
		if li.intPt[i].Equals2D(pt) {
			return true
		}
	}
	return false
}

// IsInteriorIntersection reports whether some intersection point is not an
// endpoint of either input segment.
func (li *LineIntersector) IsInteriorIntersection() bool {
	return li.IsInteriorIntersectionOf(0) || li.IsInteriorIntersectionOf(1)
}

// IsInteriorIntersectionOf restricts IsInteriorIntersection to input segment
// idx (0 or 1).
func (li *LineIntersector) IsInteriorIntersectionOf(idx int) bool {
	if li.pointOps {
		return li.IsProper()
	}
	for i := 0; i < li.IntersectionNum(); i++ {
		pt := li.intPt[i]
		if !pt.Equals2D(li.input[idx][0]) && !pt.Equals2D(li.input[idx][1]) {
			return true
		}
	}
	return false
}

// EdgeDistance is a monotone measure of how far intersection intIndex lies
// along input segment segIndex. Only ordering along one segment is
// meaningful.
func (li *LineIntersector) EdgeDistance(segIndex, intIndex int) float64 {
	return EdgeDistance(li.intPt[intIndex], li.input[segIndex][0], li.input[segIndex][1])
}

// EdgeDistance computes the distance of p along segment p0-p1 using the
// dominant axis of the segment. Exact for points computed on the segment:
// equal points give equal distances and p0 gives 0.
func EdgeDistance(p, p0, p1 core.Coordinate) float64 {
	dx := math.Abs(p1.X - p0.X)
	dy := math.Abs(p1.Y - p0.Y)

	switch {
	case p.Equals2D(p0):
		return 0
	case p.Equals2D(p1):
		return math.Max(dx, dy)
	}
	pdx := math.Abs(p.X - p0.X)
	pdy := math.Abs(p.Y - p0.Y)
	dist := pdy
	if dx > dy {
		dist = pdx
	}
	// a point off p0 must never map to 0
	if dist == 0 {
		dist = math.Max(pdx, pdy)
	}
	return dist
}
