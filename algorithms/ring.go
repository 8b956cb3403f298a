// SPDX-License-Identifier: MIT

package algorithms

import (
	"math"

	"github.com/againczz/geos/core"
)

// SignedArea returns the signed area of a closed ring. The sign follows the
// classic convention of this engine: positive for clockwise rings, negative
// for counter-clockwise ones. Rings with fewer than 3 points have area 0.
func SignedArea(ring []core.Coordinate) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	// shoelace relative to ring[0] for better conditioning
	x0 := ring[0].X
	var sum float64
	for i := 1; i < n-1; i++ {
		x := ring[i].X - x0
		y1 := ring[i+1].Y
		y2 := ring[i-1].Y
		sum += x * (y2 - y1)
	}
	return sum / 2
}

// Area is |SignedArea(ring)|.
func Area(ring []core.Coordinate) float64 { return math.Abs(SignedArea(ring)) }

// IsCCW reports whether a closed ring is oriented counter-clockwise.
// Degenerate (zero area) rings report false.
func IsCCW(ring []core.Coordinate) bool {
	return SignedArea(ring) < 0
}

// LocateInRing classifies p against a closed ring by counting crossings of
// a ray towards +X. Points on a ring segment are Boundary.
func LocateInRing(p core.Coordinate, ring []core.Coordinate) core.Location {
	var rc rayCrossings
	rc.p = p
	for i := 1; i < len(ring); i++ {
		rc.countSegment(ring[i-1], ring[i])
		if rc.onSegment {
			return core.Boundary
		}
	}
	if rc.crossings%2 == 1 {
		return core.Interior
	}
	return core.Exterior
}

type rayCrossings struct {
	p         core.Coordinate
	crossings int
	onSegment bool
}

func (rc *rayCrossings) countSegment(p1, p2 core.Coordinate) {
	p := rc.p
	// entirely to the left of p
	if p1.X < p.X && p2.X < p.X {
		return
	}
	if p.Equals2D(p2) {
		rc.onSegment = true
		return
	}
	if p1.Y == p.Y && p2.Y == p.Y {
		minX, maxX := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
		if p.X >= minX && p.X <= maxX {
			rc.onSegment = true
		}
		return
	}
	// half-open rule: the upper endpoint counts, the lower does not
	if (p1.Y > p.Y && p2.Y <= p.Y) || (p2.Y > p.Y && p1.Y <= p.Y) {
		orient := Index(p1, p2, p)
		if orient == Collinear {
			rc.onSegment = true
			return
		}
		if p2.Y < p1.Y {
			orient = -orient
		}
		if orient == Left {
			rc.crossings++
		}
	}
}

// IsOnLine reports whether p lies on any segment of the polyline pts.
func IsOnLine(p core.Coordinate, pts []core.Coordinate) bool {
	var li LineIntersector
	for i := 1; i < len(pts); i++ {
		li.ComputePointIntersection(p, pts[i-1], pts[i])
		if li.HasIntersection() {
			return true
		}
	}
	return false
}
