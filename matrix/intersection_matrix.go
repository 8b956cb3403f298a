// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/againczz/geos/core"
)

// cells is the side length of the matrix.
const cells = 3

// IntersectionMatrix is a DE-9IM matrix. Rows are locations in the first
// geometry, columns locations in the second. The zero value is NOT all
// False; use New.
type IntersectionMatrix struct {
	m [cells][cells]Dimension
}

// New returns a matrix with every cell False.
func New() *IntersectionMatrix {
	im := &IntersectionMatrix{}
	im.SetAll(False)
	return im
}

// Parse builds a matrix from a 9-character string of "F012".
func Parse(s string) (*IntersectionMatrix, error) {
	dims, err := parsePattern(s)
	if err != nil {
		return nil, err
	}
	im := &IntersectionMatrix{}
	for i, d := range dims {
		if !d.IsValue() {
			return nil, fmt.Errorf("%w: %q is a pattern symbol, not a value", ErrBadPattern, d.Symbol())
		}
		im.m[i/cells][i%cells] = d
	}
	return im, nil
}

func parsePattern(s string) ([cells * cells]Dimension, error) {
	var out [cells * cells]Dimension
	if len(s) != cells*cells {
		return out, fmt.Errorf("%w: length %d", ErrBadPattern, len(s))
	}
	for i := 0; i < len(s); i++ {
		d, err := ParseDimension(s[i])
		if err != nil {
			return out, err
		}
		out[i] = d
	}
	return out, nil
}

func inRange(l core.Location) bool { return l.IsKnown() }

// At returns the cell (row, col).
func (im *IntersectionMatrix) At(row, col core.Location) (Dimension, error) {
	if !inRange(row) || !inRange(col) {
		return False, ErrOutOfRange
	}
	return im.m[row][col], nil
}

// Get is At without the error; out-of-range indices read as False.
func (im *IntersectionMatrix) Get(row, col core.Location) Dimension {
	d, err := im.At(row, col)
	if err != nil {
		return False
	}
	return d
}

// Set overwrites cell (row, col) with d.
func (im *IntersectionMatrix) Set(row, col core.Location, d Dimension) error {
	if !inRange(row) || !inRange(col) {
		return ErrOutOfRange
	}
	if !d.IsValue() {
		return ErrBadDimension
	}
	im.m[row][col] = d
	return nil
}

// SetAll overwrites every cell with d. Non-value dimensions are ignored.
func (im *IntersectionMatrix) SetAll(d Dimension) {
	if !d.IsValue() {
		return
	}
	for i := range im.m {
		for j := range im.m[i] {
			im.m[i][j] = d
		}
	}
}

// SetAtLeast raises cell (row, col) to d if d is larger. Cells never
// decrease. Out-of-range indices and pattern dimensions are a no-op.
func (im *IntersectionMatrix) SetAtLeast(row, col core.Location, d Dimension) {
	if !inRange(row) || !inRange(col) || !d.IsValue() {
		return
	}
	if im.m[row][col] < d {
		im.m[row][col] = d
	}
}

// SetAtLeastIfValid is SetAtLeast that silently ignores an unknown
// location on either side. Used while folding labels, where a location may
// not have been computed.
func (im *IntersectionMatrix) SetAtLeastIfValid(row, col core.Location, d Dimension) {
	if row < core.Interior || col < core.Interior {
		return
	}
	im.SetAtLeast(row, col, d)
}

// SetAtLeastPattern raises each cell to the dimension at the same position
// in pattern (row-major). Symbols F, T and * leave the cell unchanged.
func (im *IntersectionMatrix) SetAtLeastPattern(pattern string) error {
	dims, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	for i, d := range dims {
		im.SetAtLeast(core.Location(i/cells), core.Location(i%cells), d)
	}
	return nil
}

// Matches reports whether the matrix satisfies a DE-9IM pattern such as
// "T*F**FFF*".
func (im *IntersectionMatrix) Matches(pattern string) (bool, error) {
	dims, err := parsePattern(pattern)
	if err != nil {
		return false, err
	}
	for i, d := range dims {
		if !matches(im.m[i/cells][i%cells], d) {
			return false, nil
		}
	}
	return true, nil
}

// Transpose returns a new matrix with rows and columns swapped, i.e. the
// matrix of the arguments in reverse order.
func (im *IntersectionMatrix) Transpose() *IntersectionMatrix {
	out := &IntersectionMatrix{}
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			out.m[j][i] = im.m[i][j]
		}
	}
	return out
}

// Equal reports cell-wise equality.
func (im *IntersectionMatrix) Equal(o *IntersectionMatrix) bool {
	return im.m == o.m
}

// String renders the matrix row-major as nine DE-9IM symbols.
func (im *IntersectionMatrix) String() string {
	buf := make([]byte, 0, cells*cells)
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			buf = append(buf, im.m[i][j].Symbol())
		}
	}
	return string(buf)
}
