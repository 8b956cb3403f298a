// SPDX-License-Identifier: MIT

package graph

// Quadrants of the plane, numbered counter-clockwise from the +X,+Y quadrant.
const (
	QuadrantNE = 0
	QuadrantNW = 1
	QuadrantSW = 2
	QuadrantSE = 3
)

// Quadrant returns the quadrant of direction (dx, dy). Directions on an axis
// belong to the quadrant that follows them counter-clockwise, except +X which
// is NE.
func Quadrant(dx, dy float64) int {
	if dx >= 0 {
		if dy >= 0 {
			return QuadrantNE
		}
		return QuadrantSE
	}
	if dy >= 0 {
		return QuadrantNW
	}
	return QuadrantSW
}
