// SPDX-License-Identifier: MIT
// Package: geos/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil          (random generators refuse to run)
//   • extent    = [0,1]×[0,1]
//   • precision = nil          (coordinates are left as computed)

package builder

import (
	"math/rand"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/precision"
)

type builderConfig struct {
	rng *rand.Rand

	minX, minY, maxX, maxY float64

	pm *precision.Model
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxX: 1, maxY: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// snap applies the configured precision model, if any.
func (c builderConfig) snap(p core.Coordinate) core.Coordinate {
	if c.pm == nil {
		return p
	}
	return c.pm.Snap(p)
}

// uniform draws a point uniformly from the extent.
func (c builderConfig) uniform() core.Coordinate {
	return core.Coordinate{
		X: c.minX + c.rng.Float64()*(c.maxX-c.minX),
		Y: c.minY + c.rng.Float64()*(c.maxY-c.minY),
	}
}

// reflect folds v back into [lo, hi].
func reflect(v, lo, hi float64) float64 {
	for v < lo || v > hi {
		if v < lo {
			v = 2*lo - v
		}
		if v > hi {
			v = 2*hi - v
		}
	}
	return v
}
