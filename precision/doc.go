// SPDX-License-Identifier: MIT
// Package precision implements the precision models used to snap
// coordinates before they enter a planar graph.
//
// What:
//
//   - Floating: full float64 precision, MakePrecise is the identity.
//   - FloatingSingle: values are narrowed to float32 and widened back.
//   - Fixed: values are rounded to the grid 1/scale, half away from zero.
//
// Why:
//
//	Two coordinates are the same node iff they are equal after snapping, so
//	every coordinate of both inputs must pass through the same Model.
//
// Complexity:
//
//	MakePrecise and Snap are O(1); SnapAll is O(n).
//
// Errors:
//
//	core.ErrInvalidConfiguration - NewFixed with zero, NaN or ±Inf scale.
package precision
