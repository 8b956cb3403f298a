// Package algorithms implements the computational geometry predicates the
// topology graph is built on.
//
// It provides free-function implementations of:
//
//   - Orientation
//     – Index (robust, exact fallback through math/big)
//
//   - Rings
//     – SignedArea, IsCCW
//     – LocateInRing (ray crossing, boundary aware)
//
//   - Lines
//     – IsOnLine
//     – LineIntersector (robust segment/segment and point/segment intersection)
//
// All functions accept core.Coordinate values and return simple Go types.
// The LineIntersector snaps computed intersection points with an optional
// precision.Model so that nodes created from intersections agree with
// snapped input vertices.
package algorithms
