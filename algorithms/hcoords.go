// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"math"

	"github.com/againczz/geos/core"
)

// errNotRepresentable signals that homogeneous division produced NaN or ±Inf
// (parallel or numerically degenerate lines).
var errNotRepresentable = errors.New("algorithms: intersection not representable")

// lineIntersection returns the intersection of the infinite lines through
// p1-p2 and q1-q2 using homogeneous coordinates.
func lineIntersection(p1, p2, q1, q2 core.Coordinate) (core.Coordinate, error) {
	px := p1.Y - p2.Y
	py := p2.X - p1.X
	pw := p1.X*p2.Y - p2.X*p1.Y

	qx := q1.Y - q2.Y
	qy := q2.X - q1.X
	qw := q1.X*q2.Y - q2.X*q1.Y

	x := py*qw - qy*pw
	y := qx*pw - px*qw
	w := px*qy - qx*py

	xInt, yInt := x/w, y/w
	if math.IsNaN(xInt) || math.IsInf(xInt, 0) || math.IsNaN(yInt) || math.IsInf(yInt, 0) {
		return core.Coordinate{}, errNotRepresentable
	}
	return core.Coordinate{X: xInt, Y: yInt}, nil
}

// normalizedIntersection shifts both segments so that the centre of the
// intersection of their envelopes is at the origin, intersects, and shifts
// back. This keeps the magnitudes in the determinant small.
func normalizedIntersection(p1, p2, q1, q2 core.Coordinate) (core.Coordinate, error) {
	minX := math.Max(math.Min(p1.X, p2.X), math.Min(q1.X, q2.X))
	maxX := math.Min(math.Max(p1.X, p2.X), math.Max(q1.X, q2.X))
	minY := math.Max(math.Min(p1.Y, p2.Y), math.Min(q1.Y, q2.Y))
	maxY := math.Min(math.Max(p1.Y, p2.Y), math.Max(q1.Y, q2.Y))
	cx, cy := (minX+maxX)/2, (minY+maxY)/2

	shift := func(c core.Coordinate) core.Coordinate {
		return core.Coordinate{X: c.X - cx, Y: c.Y - cy}
	}
	pt, err := lineIntersection(shift(p1), shift(p2), shift(q1), shift(q2))
	if err != nil {
		return pt, err
	}
	return core.Coordinate{X: pt.X + cx, Y: pt.Y + cy}, nil
}

// pointSegmentDistance is the Euclidean distance from p to segment a-b.
func pointSegmentDistance(p, a, b core.Coordinate) float64 {
	if a.Equals2D(b) {
		return p.Distance(a)
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	r := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	switch {
	case r <= 0:
		return p.Distance(a)
	case r >= 1:
		return p.Distance(b)
	}
	return p.Distance(core.Coordinate{X: a.X + r*dx, Y: a.Y + r*dy})
}

// nearestEndpoint returns the segment endpoint closest to the other segment.
// Used when the computed intersection is not trustworthy.
func nearestEndpoint(p1, p2, q1, q2 core.Coordinate) core.Coordinate {
	best := p1
	minDist := pointSegmentDistance(p1, q1, q2)
	if d := pointSegmentDistance(p2, q1, q2); d < minDist {
		minDist, best = d, p2
	}
	if d := pointSegmentDistance(q1, p1, p2); d < minDist {
		minDist, best = d, q1
	}
	if d := pointSegmentDistance(q2, p1, p2); d < minDist {
		best = q2
	}
	return best
}
