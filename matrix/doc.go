// Package matrix offers the DE-9IM intersection matrix used to report how
// two planar geometries relate.
//
// The matrix package provides:
//
//   - Dimension, the value stored in each cell: False (empty), Point, Line,
//     Area, plus the pattern-only symbols True and DontCare.
//   - IntersectionMatrix, a 3×3 grid indexed by core.Location (Interior,
//     Boundary, Exterior) of the first geometry (rows) and the second
//     geometry (columns).
//   - Monotone merging (SetAtLeast, SetAtLeastIfValid, SetAtLeastPattern):
//     cells only ever grow, so contributions can arrive in any order.
//   - Pattern helpers (Matches, String, Parse) for the 9-character DE-9IM
//     notation, e.g. "212101212".
//
// All operations are O(1); the matrix is a value-sized array and can be
// copied freely.
package matrix
