// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates a row or column that is not Interior, Boundary
	// or Exterior. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadDimension indicates a cell value outside {False, Point, Line, Area}.
	ErrBadDimension = errors.New("matrix: invalid dimension")

	// ErrBadPattern indicates a DE-9IM string that is not exactly nine
	// characters from the set "F012T*".
	ErrBadPattern = errors.New("matrix: invalid DE-9IM pattern")
)
