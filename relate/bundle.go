// SPDX-License-Identifier: MIT
// Package: geos/relate
//
// bundle.go — labelling of the edge ends around one node.
//
// Contract:
//   • Coincident directed edges leaving a node form one edgeBundle. Its On
//     location follows the Mod-2 boundary rule; a side is Interior if any
//     area member says so, else Exterior if one says that.
//   • Sides are propagated counter-clockwise per input, starting from the
//     left side of the last area bundle. Unknown sides take the carried
//     location.
//   • A line bundle on an input's boundary marks a dimensional collapse;
//     remaining unknown locations of that input are then Exterior.
//     Otherwise they come from locating the node in the input's area.
//   • The completed bundle label is written back onto each member.
//
// Errors:
//   • *core.TopologyError "side location conflict" when a right side
//     disagrees with the carried location, and "found single null side"
//     when exactly one side is known. Both mean the input is not simple.
//
// Complexity: O(d) per node of degree d, plus at most one point location
// per input.

package relate

import (
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
)

// edgeBundle is a run of directed edges leaving a node in the same
// direction, together with the label they share.
type edgeBundle struct {
	edges []*graph.DirectedEdge
	label graph.Label
}

func (b *edgeBundle) coordinate() core.Coordinate { return b.edges[0].Coordinate() }

// computeLabel combines member labels. The bundle is in area form if any
// member is. On follows the mod-2 boundary rule; a side is Interior if any
// area member says so, otherwise Exterior if any says that.
func (b *edgeBundle) computeLabel() {
	isArea := false
	for _, de := range b.edges {
		if de.Label().IsArea() {
			isArea = true
			break
		}
	}
	if isArea {
		b.label = graph.NewAreaLabel(core.None, core.None, core.None)
	} else {
		b.label = graph.NewLineLabel(core.None)
	}
	for i := 0; i < 2; i++ {
		b.computeOn(i)
		if isArea {
			b.computeSide(i, core.Left)
			b.computeSide(i, core.Right)
		}
	}
}

func (b *edgeBundle) computeOn(i int) {
	boundaries := 0
	interior := false
	for _, de := range b.edges {
		switch de.Label().On(i) {
		case core.Boundary:
			boundaries++
		case core.Interior:
			interior = true
		}
	}
	loc := core.None
	if interior {
		loc = core.Interior
	}
	if boundaries > 0 {
		loc = core.Boundary
		if boundaries%2 == 0 {
			loc = core.Interior
		}
	}
	b.label.SetLocation(i, core.On, loc)
}

func (b *edgeBundle) computeSide(i int, pos core.Position) {
	for _, de := range b.edges {
		l := de.Label()
		if !l.IsArea() {
			continue
		}
		switch l.Location(i, pos) {
		case core.Interior:
			b.label.SetLocation(i, pos, core.Interior)
			return
		case core.Exterior:
			b.label.SetLocation(i, pos, core.Exterior)
		}
	}
}

// nodeBundles groups the star of n and computes each bundle label.
func nodeBundles(n *graph.Node) []*edgeBundle {
	groups := n.Star().Bundles()
	out := make([]*edgeBundle, len(groups))
	for i, g := range groups {
		b := &edgeBundle{edges: g}
		b.computeLabel()
		out[i] = b
	}
	return out
}

// propagateSideLabels walks the bundles counter-clockwise carrying the
// current side location of input i. It starts from the left side of the
// last area bundle; a right side that disagrees with the carried location
// is a side location conflict.
func propagateSideLabels(bundles []*edgeBundle, i int) error {
	start := core.None
	for _, b := range bundles {
		if b.label.IsAreaOf(i) {
			if loc := b.label.Location(i, core.Left); loc != core.None {
				start = loc
			}
		}
	}
	if start == core.None {
		return nil
	}

	curr := start
	for _, b := range bundles {
		l := &b.label
		if l.On(i) == core.None {
			l.SetLocation(i, core.On, curr)
		}
		if !l.IsAreaOf(i) {
			continue
		}
		left, right := l.Location(i, core.Left), l.Location(i, core.Right)
		if right != core.None {
			if right != curr {
				return core.NewTopologyError("side location conflict", b.coordinate())
			}
			if left == core.None {
				return core.NewTopologyError("found single null side", b.coordinate())
			}
			curr = left
			continue
		}
		if left != core.None {
			return core.NewTopologyError("found single null side", b.coordinate())
		}
		l.SetLocation(i, core.Right, curr)
		l.SetLocation(i, core.Left, curr)
	}
	return nil
}

// labelStar completes the bundle labels at n and writes them back onto the
// member directed edges. args are the two snapped inputs.
func labelStar(n *graph.Node, args [2]*Geometry) ([]*edgeBundle, error) {
	bundles := nodeBundles(n)
	for i := 0; i < 2; i++ {
		if err := propagateSideLabels(bundles, i); err != nil {
			return nil, err
		}
	}

	var collapsed [2]bool
	for _, b := range bundles {
		for i := 0; i < 2; i++ {
			if b.label.IsLine(i) && b.label.On(i) == core.Boundary {
				collapsed[i] = true
			}
		}
	}

	var inArea [2]*core.Location
	for _, b := range bundles {
		for i := 0; i < 2; i++ {
			if !b.label.IsAnyNull(i) {
				continue
			}
			loc := core.Exterior
			if !collapsed[i] {
				if inArea[i] == nil {
					l := locateInArea(n.Coordinate(), args[i])
					inArea[i] = &l
				}
				loc = *inArea[i]
			}
			b.label.SetAllLocationsIfNull(i, loc)
		}
	}

	for _, b := range bundles {
		for _, de := range b.edges {
			*de.Label() = b.label
		}
	}
	return bundles, nil
}
