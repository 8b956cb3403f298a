// SPDX-License-Identifier: MIT
// Package: geos/builder
//
// shapes.go — closed rings: Rectangle, RegularPolygon, Grid.
//
// Contract:
//   • Rings are counter-clockwise and closed (first point repeated last).
//   • With WithPrecision, vertices are snapped and consecutive duplicates
//     dropped; a ring that collapses below four points is ErrTooFewVertices.

package builder

import (
	"math"

	"github.com/againczz/geos/core"
)

const (
	methodRectangle      = "Rectangle"
	methodRegularPolygon = "RegularPolygon"
	methodGrid           = "Grid"

	minPolygonVertices = 3
	minGridDim         = 1
	minRingPoints      = 4
)

// Rectangle returns the counter-clockwise ring of [minX,maxX]×[minY,maxY].
func Rectangle(minX, minY, maxX, maxY float64, opts ...BuilderOption) ([]core.Coordinate, error) {
	cfg := newBuilderConfig(opts...)
	if !(minX < maxX && minY < maxY) || !finite(minX, minY, maxX, maxY) {
		return nil, builderErrorf(methodRectangle, "[%g,%g]x[%g,%g]: %w", minX, maxX, minY, maxY, ErrInvalidExtent)
	}
	return cfg.ring(methodRectangle, []core.Coordinate{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	})
}

// RegularPolygon returns the counter-clockwise ring of n vertices on the
// circle of the given radius, the first vertex on the +X axis.
func RegularPolygon(n int, center core.Coordinate, radius float64, opts ...BuilderOption) ([]core.Coordinate, error) {
	cfg := newBuilderConfig(opts...)
	if n < minPolygonVertices {
		return nil, builderErrorf(methodRegularPolygon, "n=%d (must be ≥ %d): %w", n, minPolygonVertices, ErrTooFewVertices)
	}
	if !(radius > 0) || !finite(center.X, center.Y, radius) {
		return nil, builderErrorf(methodRegularPolygon, "radius=%g: %w", radius, ErrInvalidExtent)
	}
	pts := make([]core.Coordinate, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = core.Coordinate{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return cfg.ring(methodRegularPolygon, pts)
}

// Grid tiles the configured extent with rows×cols rectangular cells and
// returns their rings in row-major order (bottom row first).
func Grid(rows, cols int, opts ...BuilderOption) ([][]core.Coordinate, error) {
	cfg := newBuilderConfig(opts...)
	if rows < minGridDim || cols < minGridDim {
		return nil, builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
	}
	w := (cfg.maxX - cfg.minX) / float64(cols)
	h := (cfg.maxY - cfg.minY) / float64(rows)
	out := make([][]core.Coordinate, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x0, y0 := cfg.minX+float64(c)*w, cfg.minY+float64(r)*h
			ring, err := cfg.ring(methodGrid, []core.Coordinate{
				{X: x0, Y: y0}, {X: x0 + w, Y: y0}, {X: x0 + w, Y: y0 + h}, {X: x0, Y: y0 + h},
			})
			if err != nil {
				return nil, err
			}
			out = append(out, ring)
		}
	}
	return out, nil
}

// ring snaps the open vertex list, closes it and checks the result.
func (c builderConfig) ring(method string, open []core.Coordinate) ([]core.Coordinate, error) {
	pts := make([]core.Coordinate, 0, len(open)+1)
	for _, p := range open {
		pts = append(pts, c.snap(p))
	}
	pts = append(pts, pts[0])
	pts = core.RemoveRepeated(pts)
	if len(pts) < minRingPoints {
		return nil, builderErrorf(method, "ring collapsed to %d points: %w", len(pts), ErrTooFewVertices)
	}
	return pts, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
