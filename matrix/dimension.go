// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
)

// Dimension is the topological dimension of a cell of the matrix.
type Dimension int8

const (
	// DontCare matches any value in a pattern ('*').
	DontCare Dimension = -3
	// True matches any non-empty value in a pattern ('T').
	True Dimension = -2
	// False is the empty intersection ('F').
	False Dimension = -1
	// Point is a 0-dimensional intersection ('0').
	Point Dimension = 0
	// Line is a 1-dimensional intersection ('1').
	Line Dimension = 1
	// Area is a 2-dimensional intersection ('2').
	Area Dimension = 2
)

// IsValue reports whether d may be stored in a matrix cell.
func (d Dimension) IsValue() bool { return d >= False && d <= Area }

// Symbol returns the DE-9IM character of d.
func (d Dimension) Symbol() byte {
	switch d {
	case DontCare:
		return '*'
	case True:
		return 'T'
	case False:
		return 'F'
	case Point:
		return '0'
	case Line:
		return '1'
	case Area:
		return '2'
	}
	return '?'
}

func (d Dimension) String() string {
	if d.Symbol() == '?' {
		return "Dimension(" + strconv.Itoa(int(d)) + ")"
	}
	return string(d.Symbol())
}

// ParseDimension converts a DE-9IM character to a Dimension.
func ParseDimension(ch byte) (Dimension, error) {
	switch ch {
	case '*':
		return DontCare, nil
	case 'T', 't':
		return True, nil
	case 'F', 'f':
		return False, nil
	case '0':
		return Point, nil
	case '1':
		return Line, nil
	case '2':
		return Area, nil
	}
	return False, fmt.Errorf("%w: symbol %q", ErrBadPattern, ch)
}

// matches reports whether actual satisfies the pattern symbol required.
func matches(actual, required Dimension) bool {
	switch required {
	case DontCare:
		return true
	case True:
		return actual >= Point
	}
	return actual == required
}
