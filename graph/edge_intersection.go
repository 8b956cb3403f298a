// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/google/btree"

	"github.com/againczz/geos/core"
)

// EdgeIntersection is a point at which an edge is intersected, keyed by the
// segment it lies on and its distance along that segment.
type EdgeIntersection struct {
	Coord    core.Coordinate
	SegIndex int
	Dist     float64
}

// Compare orders intersections by segment index, then distance.
func (ei EdgeIntersection) Compare(o EdgeIntersection) int {
	switch {
	case ei.SegIndex < o.SegIndex:
		return -1
	case ei.SegIndex > o.SegIndex:
		return 1
	case ei.Dist < o.Dist:
		return -1
	case ei.Dist > o.Dist:
		return 1
	}
	return 0
}

const eiDegree = 8

// EdgeIntersectionList is the ordered set of intersections of one edge.
// Adding an intersection with an existing key is a no-op.
type EdgeIntersectionList struct {
	tree *btree.BTreeG[EdgeIntersection]
}

func newEdgeIntersectionList() EdgeIntersectionList {
	return EdgeIntersectionList{
		tree: btree.NewG(eiDegree, func(a, b EdgeIntersection) bool { return a.Compare(b) < 0 }),
	}
}

// Add inserts an intersection and returns the stored entry (the existing one
// when the key is already present).
func (l *EdgeIntersectionList) Add(coord core.Coordinate, segIndex int, dist float64) EdgeIntersection {
	ei := EdgeIntersection{Coord: coord, SegIndex: segIndex, Dist: dist}
	if old, ok := l.tree.Get(ei); ok {
		return old
	}
	l.tree.ReplaceOrInsert(ei)
	return ei
}

// Len is the number of distinct intersections.
func (l *EdgeIntersectionList) Len() int { return l.tree.Len() }

// IsIntersection reports whether pt is one of the recorded points.
func (l *EdgeIntersectionList) IsIntersection(pt core.Coordinate) bool {
	found := false
	l.tree.Ascend(func(ei EdgeIntersection) bool {
		found = ei.Coord.Equals2D(pt)
		return !found
	})
	return found
}

// Items returns the intersections in order.
func (l *EdgeIntersectionList) Items() []EdgeIntersection {
	out := make([]EdgeIntersection, 0, l.tree.Len())
	l.tree.Ascend(func(ei EdgeIntersection) bool {
		out = append(out, ei)
		return true
	})
	return out
}
