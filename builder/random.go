// SPDX-License-Identifier: MIT
// Package: geos/builder
//
// random.go — random linework: RandomSegments, RandomWalk.
//
// Contract:
//   • A seeded RNG is required (ErrNeedRandSource otherwise).
//   • All coordinates lie inside the configured extent.
//   • Consecutive points are distinct after snapping; a draw that collapses
//     is repeated, up to maxDraws times.
//
// Determinism:
//   • Lines are produced in order, each consuming the RNG in a fixed
//     pattern, so a seed fixes the whole output.

package builder

import (
	"math"

	"github.com/againczz/geos/core"
)

const (
	methodRandomSegments = "RandomSegments"
	methodRandomWalk     = "RandomWalk"

	minLines = 1
	minSteps = 1
	maxDraws = 64

	// walkStepFraction is the maximum step length relative to the shorter
	// side of the extent.
	walkStepFraction = 0.1
)

// RandomSegments returns n two-point lines with endpoints drawn uniformly
// from the extent.
func RandomSegments(n int, opts ...BuilderOption) ([][]core.Coordinate, error) {
	cfg := newBuilderConfig(opts...)
	if n < minLines {
		return nil, builderErrorf(methodRandomSegments, "n=%d (must be ≥ %d): %w", n, minLines, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomSegments, "%w", ErrNeedRandSource)
	}
	out := make([][]core.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		p0 := cfg.snap(cfg.uniform())
		p1, err := cfg.drawDistinct(methodRandomSegments, p0, cfg.uniform)
		if err != nil {
			return nil, err
		}
		out = append(out, []core.Coordinate{p0, p1})
	}
	return out, nil
}

// RandomWalk returns n polylines of steps+1 points. Each starts at a uniform
// point; every step turns to a uniform heading and advances between half and
// the full step length, reflecting off the extent's sides.
func RandomWalk(n, steps int, opts ...BuilderOption) ([][]core.Coordinate, error) {
	cfg := newBuilderConfig(opts...)
	if n < minLines || steps < minSteps {
		return nil, builderErrorf(methodRandomWalk, "n=%d, steps=%d (each must be ≥ 1): %w", n, steps, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomWalk, "%w", ErrNeedRandSource)
	}
	stepLen := walkStepFraction * math.Min(cfg.maxX-cfg.minX, cfg.maxY-cfg.minY)

	out := make([][]core.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		line := make([]core.Coordinate, 1, steps+1)
		line[0] = cfg.snap(cfg.uniform())
		for s := 0; s < steps; s++ {
			prev := line[len(line)-1]
			next, err := cfg.drawDistinct(methodRandomWalk, prev, func() core.Coordinate {
				a := 2 * math.Pi * cfg.rng.Float64()
				d := stepLen * (0.5 + 0.5*cfg.rng.Float64())
				return core.Coordinate{
					X: reflect(prev.X+d*math.Cos(a), cfg.minX, cfg.maxX),
					Y: reflect(prev.Y+d*math.Sin(a), cfg.minY, cfg.maxY),
				}
			})
			if err != nil {
				return nil, err
			}
			line = append(line, next)
		}
		out = append(out, line)
	}
	return out, nil
}

// drawDistinct calls draw until the snapped result differs from prev.
func (c builderConfig) drawDistinct(method string, prev core.Coordinate, draw func() core.Coordinate) (core.Coordinate, error) {
	for i := 0; i < maxDraws; i++ {
		p := c.snap(draw())
		if !p.Equals2D(prev) {
			return p, nil
		}
	}
	return core.Coordinate{}, builderErrorf(method, "no distinct point after %d draws: %w", maxDraws, ErrInvalidExtent)
}
