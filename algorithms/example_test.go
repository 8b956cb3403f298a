package algorithms_test

import (
	"fmt"

	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/core"
)

// ExampleLineIntersector intersects the diagonals of the unit square.
func ExampleLineIntersector() {
	var li algorithms.LineIntersector
	li.ComputeIntersection(
		core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 2, Y: 2},
		core.Coordinate{X: 0, Y: 2}, core.Coordinate{X: 2, Y: 0},
	)
	fmt.Println(li.IntersectionNum(), li.Intersection(0), li.IsProper())
	// Output: 1 (1 1) true
}

// ExampleLocateInRing classifies three points against a square.
func ExampleLocateInRing() {
	ring := []core.Coordinate{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 0}}
	for _, p := range []core.Coordinate{{X: 1, Y: 1}, {X: 4, Y: 2}, {X: 5, Y: 5}} {
		fmt.Println(p, algorithms.LocateInRing(p, ring))
	}
	// Output:
	// (1 1) Interior
	// (4 2) Boundary
	// (5 5) Exterior
}
