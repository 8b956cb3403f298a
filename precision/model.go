// SPDX-License-Identifier: MIT

package precision

import (
	"fmt"
	"math"

	"github.com/againczz/geos/core"
)

// Type enumerates the precision model kinds.
type Type int

const (
	// Floating keeps full double precision.
	Floating Type = iota
	// FloatingSingle keeps single (float32) precision.
	FloatingSingle
	// Fixed rounds to a fixed number of decimal places given by a scale.
	Fixed
)

func (t Type) String() string {
	switch t {
	case Floating:
		return "Floating"
	case FloatingSingle:
		return "FloatingSingle"
	case Fixed:
		return "Fixed"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Maximum significant digits of the floating kinds.
const (
	floatingDigits       = 16
	floatingSingleDigits = 6
)

// Model is an immutable precision model. The zero value is not usable;
// a nil *Model behaves as Floating.
type Model struct {
	kind  Type
	scale float64
}

// NewFloating returns a full double precision model.
func NewFloating() *Model { return &Model{kind: Floating} }

// NewFloatingSingle returns a single precision model.
func NewFloatingSingle() *Model { return &Model{kind: FloatingSingle} }

// NewFixed returns a fixed model rounding to the grid 1/|scale|.
// A scale of 100 keeps two decimal places.
func NewFixed(scale float64) (*Model, error) {
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("precision: fixed scale %v: %w", scale, core.ErrInvalidConfiguration)
	}
	return &Model{kind: Fixed, scale: math.Abs(scale)}, nil
}

// MustFixed is NewFixed that panics on error, for static configuration.
func MustFixed(scale float64) *Model {
	m, err := NewFixed(scale)
	if err != nil {
		panic(err)
	}
	return m
}

// Type returns the model kind.
func (m *Model) Type() Type {
	if m == nil {
		return Floating
	}
	return m.kind
}

// Scale returns the fixed scale, or 0 for the floating kinds.
func (m *Model) Scale() float64 {
	if m == nil || m.kind != Fixed {
		return 0
	}
	return m.scale
}

// IsFloating reports whether m is one of the floating kinds.
func (m *Model) IsFloating() bool {
	k := m.Type()
	return k == Floating || k == FloatingSingle
}

// MakePrecise snaps a single ordinate. Idempotent.
func (m *Model) MakePrecise(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	switch m.Type() {
	case FloatingSingle:
		return float64(float32(v))
	case Fixed:
		// math.Round is half away from zero, so -0.005 -> -0.01 at scale 100.
		return math.Round(v*m.scale) / m.scale
	}
	return v
}

// Snap snaps both ordinates of c.
func (m *Model) Snap(c core.Coordinate) core.Coordinate {
	return core.Coordinate{X: m.MakePrecise(c.X), Y: m.MakePrecise(c.Y)}
}

// SnapAll returns a new slice with every coordinate snapped.
func (m *Model) SnapAll(pts []core.Coordinate) []core.Coordinate {
	out := make([]core.Coordinate, len(pts))
	for i, p := range pts {
		out[i] = m.Snap(p)
	}
	return out
}

// MaximumSignificantDigits is 16 for Floating, 6 for FloatingSingle and
// 1+ceil(log10(scale)) for Fixed.
func (m *Model) MaximumSignificantDigits() int {
	switch m.Type() {
	case FloatingSingle:
		return floatingSingleDigits
	case Fixed:
		return 1 + int(math.Ceil(math.Log10(m.scale)))
	}
	return floatingDigits
}

// Compare orders models by MaximumSignificantDigits: -1 when m is coarser
// than o, +1 when finer, 0 when equal.
func (m *Model) Compare(o *Model) int {
	a, b := m.MaximumSignificantDigits(), o.MaximumSignificantDigits()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Coarser returns the model with fewer significant digits; a on ties.
func Coarser(a, b *Model) *Model {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

func (m *Model) String() string {
	switch m.Type() {
	case Fixed:
		return fmt.Sprintf("Fixed (Scale=%g)", m.scale)
	case FloatingSingle:
		return "Floating-Single"
	}
	return "Floating"
}
