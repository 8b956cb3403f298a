// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every package of the module.
// Callers match with errors.Is; TopologyError additionally carries the
// coordinate at which the inconsistency was detected (errors.As).

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates a configuration value that cannot be
	// used, e.g. a fixed precision model with zero or non-finite scale.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrMalformedInput indicates a geometry that violates a structural
	// precondition: fewer than two distinct points on a line, an open or
	// degenerate ring, non-finite ordinates, or mixed geometry kinds.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrTopologyInconsistency indicates that labels or depths computed for the
	// planar graph contradict each other. Usually caused by invalid input such
	// as self-intersecting rings.
	ErrTopologyInconsistency = errors.New("core: topology inconsistency")
)

// TopologyError reports a topology inconsistency at a specific coordinate.
// It unwraps to ErrTopologyInconsistency.
type TopologyError struct {
	// Msg describes the contradiction.
	Msg string

	// Pt is where it was detected.
	Pt Coordinate
}

// NewTopologyError returns a *TopologyError for msg located at pt.
func NewTopologyError(msg string, pt Coordinate) *TopologyError {
	return &TopologyError{Msg: msg, Pt: pt}
}

// Error implements error.
func (e *TopologyError) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrTopologyInconsistency.Error(), e.Msg, e.Pt)
}

// Unwrap lets errors.Is(err, ErrTopologyInconsistency) succeed.
func (e *TopologyError) Unwrap() error { return ErrTopologyInconsistency }
