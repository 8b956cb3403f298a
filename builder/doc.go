// Package builder provides deterministic synthetic geometries for tests,
// examples and benchmarks of the relate engine. It follows the functional
// options style used across the module: every generator accepts
// BuilderOption values that tune RNG, extent and precision.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand: explicit randomness, never a global source.
//     – WithExtent:     the bounding box random generators draw from.
//     – WithPrecision:  snap every produced coordinate to a model.
//   - Closed rings (counter-clockwise, first point repeated last):
//     – Rectangle, RegularPolygon, Grid.
//   - Random linework (requires WithSeed or WithRand):
//     – RandomSegments: n independent two-point lines.
//     – RandomWalk:     n polylines built from bounded random steps.
//
// Guarantees:
//
//   - Same options, same output: generators only draw from the configured RNG.
//   - Every line has at least two distinct points; every ring at least four.
//   - Option constructors panic on meaningless input; generators return
//     sentinel errors (ErrTooFewVertices, ErrNeedRandSource, ErrInvalidExtent).
//
// Example:
//
//	lines, err := builder.RandomWalk(8, 20, builder.WithSeed(1),
//	    builder.WithExtent(0, 0, 100, 100))
package builder
