// SPDX-License-Identifier: MIT

package core

import "strconv"

// Location is the topological location of a point relative to a geometry.
// Interior, Boundary and Exterior are also the row (first geometry) and
// column (second geometry) indices of an intersection matrix.
type Location int8

const (
	// None is an unknown or not yet computed location.
	None Location = -1
	// Interior of a geometry.
	Interior Location = 0
	// Boundary of a geometry.
	Boundary Location = 1
	// Exterior of a geometry.
	Exterior Location = 2
)

// IsKnown reports whether l is one of Interior, Boundary, Exterior.
func (l Location) IsKnown() bool { return l >= Interior && l <= Exterior }

// Symbol returns 'i', 'b', 'e' or '-'.
func (l Location) Symbol() byte {
	switch l {
	case Interior:
		return 'i'
	case Boundary:
		return 'b'
	case Exterior:
		return 'e'
	}
	return '-'
}

func (l Location) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	case Exterior:
		return "Exterior"
	case None:
		return "None"
	}
	return "Location(" + strconv.Itoa(int(l)) + ")"
}

// Position indexes the sides of a directed edge.
type Position int8

const (
	// On the edge itself.
	On Position = 0
	// Left of the edge, looking along its direction.
	Left Position = 1
	// Right of the edge, looking along its direction.
	Right Position = 2
)

// Opposite swaps Left and Right; On is its own opposite.
func (p Position) Opposite() Position {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	}
	return p
}

func (p Position) String() string {
	switch p {
	case On:
		return "On"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Position(" + strconv.Itoa(int(p)) + ")"
}
