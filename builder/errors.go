// SPDX-License-Identifier: MIT
// Package: geos/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w; option constructors panic instead.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a count parameter (vertices, rows, lines,
// steps) below the minimum of the requested generator.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a random generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidExtent indicates an empty or non-finite box or a non-positive
// radius.
var ErrInvalidExtent = errors.New("builder: invalid extent")

// builderErrorf prefixes err with the generator name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
