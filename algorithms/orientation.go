// SPDX-License-Identifier: MIT

package algorithms

import (
	"math/big"

	"github.com/againczz/geos/core"
)

// Orientation is the turn direction of an ordered point triple.
type Orientation int

// The three possible orientations. Left/Right are aliases used when asking
// on which side of a directed segment a point lies.
const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1

	Right    = Clockwise
	Straight = Collinear
	Left     = CounterClockwise
)

// orientationErrBound bounds the relative rounding error of the float64
// determinant; outside the bound the sign is certain.
const orientationErrBound = 1e-15

// Index returns the orientation of q relative to the directed segment p1->p2:
// CounterClockwise when q is to the left, Clockwise when to the right and
// Collinear when on the supporting line.
//
// The float64 determinant is used when its sign is provably correct; the
// remaining cases are decided exactly with math/big.
func Index(p1, p2, q core.Coordinate) Orientation {
	detLeft := (p1.X - q.X) * (p2.Y - q.Y)
	detRight := (p1.Y - q.Y) * (p2.X - q.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return signOf(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return signOf(det)
		}
		detSum = -detLeft - detRight
	default:
		return signOf(det)
	}

	if det >= orientationErrBound*detSum || -det >= orientationErrBound*detSum {
		return signOf(det)
	}
	return exactIndex(p1, p2, q)
}

func signOf(v float64) Orientation {
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	}
	return Collinear
}

func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func bigSub(a, b float64) *big.Float {
	x := newBigFloat().SetFloat64(a)
	return x.Sub(x, newBigFloat().SetFloat64(b))
}

// exactIndex evaluates the determinant without rounding.
func exactIndex(p1, p2, q core.Coordinate) Orientation {
	left := newBigFloat().Mul(bigSub(p1.X, q.X), bigSub(p2.Y, q.Y))
	right := newBigFloat().Mul(bigSub(p1.Y, q.Y), bigSub(p2.X, q.X))
	return Orientation(left.Cmp(right))
}
