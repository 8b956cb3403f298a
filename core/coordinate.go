// SPDX-License-Identifier: MIT

package core

import (
	"math"
	"strconv"

	"github.com/golang/geo/r2"
)

// Coordinate is a planar point. Two coordinates are the same node of a
// planar graph iff they are exactly equal after snapping.
type Coordinate struct {
	X, Y float64
}

// Equals2D reports exact equality of both ordinates.
func (c Coordinate) Equals2D(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Compare orders coordinates by X, then by Y. Returns -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	}
	return 0
}

// Less is Compare(o) < 0; handy for btree and sort callbacks.
func (c Coordinate) Less(o Coordinate) bool { return c.Compare(o) < 0 }

// IsFinite reports whether both ordinates are neither NaN nor ±Inf.
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// Distance is the Euclidean distance to o.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// R2 converts c to a golang/geo planar point.
func (c Coordinate) R2() r2.Point { return r2.Point{X: c.X, Y: c.Y} }

// String renders c as "(x y)" using the shortest exact representation.
func (c Coordinate) String() string {
	return "(" + strconv.FormatFloat(c.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(c.Y, 'g', -1, 64) + ")"
}

// RemoveRepeated returns pts with consecutive duplicates dropped.
// The input slice is not modified.
func RemoveRepeated(pts []Coordinate) []Coordinate {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Coordinate, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if !p.Equals2D(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}
