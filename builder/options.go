// SPDX-License-Identifier: MIT
// Package: geos/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/againczz/geos/precision"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// any coordinate is produced.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for random generators. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithExtent sets the box random generators draw from. Panics unless
// minX < maxX and minY < maxY with finite bounds.
func WithExtent(minX, minY, maxX, maxY float64) BuilderOption {
	for _, v := range []float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("builder: WithExtent with non-finite bound")
		}
	}
	if minX >= maxX || minY >= maxY {
		panic("builder: WithExtent with empty box")
	}
	return func(c *builderConfig) {
		c.minX, c.minY, c.maxX, c.maxY = minX, minY, maxX, maxY
	}
}

// WithPrecision snaps every produced coordinate to pm. Panics on nil.
func WithPrecision(pm *precision.Model) BuilderOption {
	if pm == nil {
		panic("builder: WithPrecision(nil)")
	}
	return func(c *builderConfig) {
		c.pm = pm
	}
}
