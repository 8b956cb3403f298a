// SPDX-License-Identifier: MIT
// Package core defines the value types shared by every layer of the
// topology engine: Coordinate, Location, Position, envelope helpers and the
// sentinel errors.
//
// What:
//
//   - Coordinate is an exact (X, Y) pair with a total order (X, then Y).
//   - Location classifies a point against a geometry (Interior, Boundary,
//     Exterior, or None when not yet known). It doubles as the row/column
//     index of an intersection matrix.
//   - Position names the side of a directed edge (On, Left, Right).
//   - Envelopes are golang/geo r2.Rect values.
//
// Errors:
//
//	ErrInvalidConfiguration  - precision model (or other option) is unusable.
//	ErrMalformedInput        - geometry violates a structural precondition.
//	ErrTopologyInconsistency - labelling or depth assignment contradicted itself.
//	*TopologyError           - ErrTopologyInconsistency with the offending coordinate.
package core
