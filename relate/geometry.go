// SPDX-License-Identifier: MIT

package relate

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/matrix"
	"github.com/againczz/geos/precision"
)

// Polygon is a shell with optional holes. Rings are closed coordinate
// sequences of at least four points.
type Polygon struct {
	Shell []core.Coordinate
	Holes [][]core.Coordinate
}

// Geometry is the input model: a set of points, a set of lines or a set of
// polygons. Exactly one of the collections may be non-empty.
type Geometry struct {
	Points   []core.Coordinate
	Lines    [][]core.Coordinate
	Polygons []Polygon

	// Precision is the model the coordinates are meant for. Nil means
	// floating.
	Precision *precision.Model
}

// NewPoints returns a point geometry.
func NewPoints(pts ...core.Coordinate) *Geometry { return &Geometry{Points: pts} }

// NewLines returns a line geometry.
func NewLines(lines ...[]core.Coordinate) *Geometry { return &Geometry{Lines: lines} }

// NewPolygons returns a polygon geometry.
func NewPolygons(polys ...Polygon) *Geometry { return &Geometry{Polygons: polys} }

// IsEmpty reports whether the geometry has no components.
func (g *Geometry) IsEmpty() bool {
	return len(g.Points) == 0 && len(g.Lines) == 0 && len(g.Polygons) == 0
}

// Dimension is Point, Line or Area, or False when empty.
func (g *Geometry) Dimension() matrix.Dimension {
	switch {
	case len(g.Polygons) > 0:
		return matrix.Area
	case len(g.Lines) > 0:
		return matrix.Line
	case len(g.Points) > 0:
		return matrix.Point
	}
	return matrix.False
}

// BoundaryDimension is Line for polygons, Point for lines with at least
// one open component, False otherwise.
func (g *Geometry) BoundaryDimension() matrix.Dimension {
	switch g.Dimension() {
	case matrix.Area:
		return matrix.Line
	case matrix.Line:
		for _, l := range g.Lines {
			if len(l) > 0 && !l[0].Equals2D(l[len(l)-1]) {
				return matrix.Point
			}
		}
	}
	return matrix.False
}

// Envelope is the bounding rectangle of every coordinate.
func (g *Geometry) Envelope() r2.Rect {
	env := core.EnvelopeOf(g.Points)
	for _, l := range g.Lines {
		env = env.Union(core.EnvelopeOf(l))
	}
	for _, p := range g.Polygons {
		env = env.Union(core.EnvelopeOf(p.Shell))
	}
	return env
}

// Validate checks the structural preconditions without snapping.
func (g *Geometry) Validate() error {
	_, err := g.snapped(precision.NewFloating())
	return err
}

// snapped returns a validated copy with every coordinate snapped to pm and
// consecutive duplicates removed.
func (g *Geometry) snapped(pm *precision.Model) (*Geometry, error) {
	kinds := 0
	for _, n := range []int{len(g.Points), len(g.Lines), len(g.Polygons)} {
		if n > 0 {
			kinds++
		}
	}
	if kinds > 1 {
		return nil, fmt.Errorf("relate: mixed geometry kinds: %w", core.ErrMalformedInput)
	}

	out := &Geometry{Precision: pm}
	for i, p := range g.Points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("relate: point %d: non-finite ordinate: %w", i, core.ErrMalformedInput)
		}
		q := pm.Snap(p)
		if !q.IsFinite() {
			return nil, fmt.Errorf("relate: point %d: %v overflows %v: %w", i, p, pm, core.ErrMalformedInput)
		}
		out.Points = append(out.Points, q)
	}
	for i, l := range g.Lines {
		pts, err := snapSequence(l, pm)
		if err != nil {
			return nil, fmt.Errorf("relate: line %d: %w", i, err)
		}
		if len(pts) < 2 {
			return nil, fmt.Errorf("relate: line %d: needs 2 distinct points: %w", i, core.ErrMalformedInput)
		}
		out.Lines = append(out.Lines, pts)
	}
	for i, p := range g.Polygons {
		shell, err := snapRing(p.Shell, pm)
		if err != nil {
			return nil, fmt.Errorf("relate: polygon %d shell: %w", i, err)
		}
		poly := Polygon{Shell: shell}
		for j, h := range p.Holes {
			hole, err := snapRing(h, pm)
			if err != nil {
				return nil, fmt.Errorf("relate: polygon %d hole %d: %w", i, j, err)
			}
			poly.Holes = append(poly.Holes, hole)
		}
		out.Polygons = append(out.Polygons, poly)
	}
	return out, nil
}

// snapSequence snaps pts and drops repeated points. Finite ordinates can
// still overflow the model (float32 range, v*scale), so the result is
// checked as well.
func snapSequence(pts []core.Coordinate, pm *precision.Model) ([]core.Coordinate, error) {
	for _, p := range pts {
		if !p.IsFinite() {
			return nil, fmt.Errorf("non-finite ordinate: %w", core.ErrMalformedInput)
		}
	}
	out := pm.SnapAll(pts)
	for i, q := range out {
		if !q.IsFinite() {
			return nil, fmt.Errorf("%v overflows %v: %w", pts[i], pm, core.ErrMalformedInput)
		}
	}
	return core.RemoveRepeated(out), nil
}

func snapRing(ring []core.Coordinate, pm *precision.Model) ([]core.Coordinate, error) {
	pts, err := snapSequence(ring, pm)
	if err != nil {
		return nil, err
	}
	if len(pts) > 0 && !pts[0].Equals2D(pts[len(pts)-1]) {
		return nil, fmt.Errorf("ring is not closed: %w", core.ErrMalformedInput)
	}
	if len(pts) < 4 {
		return nil, fmt.Errorf("ring needs 4 points, got %d: %w", len(pts), core.ErrMalformedInput)
	}
	return pts, nil
}
