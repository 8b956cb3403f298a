// SPDX-License-Identifier: MIT

package relate

import (
	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
)

// segmentIntersector records intersections found for candidate segment
// pairs on both edges. It implements sweepline.SegmentIntersector.
//
// With includeProper false a proper crossing (interior to both segments) is
// flagged but not added to the edges, so every recorded intersection is an
// input vertex.
type segmentIntersector struct {
	li             *algorithms.LineIntersector
	includeProper  bool
	recordIsolated bool
	boundary       [2][]core.Coordinate

	intersections     int
	hasIntersection   bool
	hasProper         bool
	hasProperInterior bool
	properPoint       core.Coordinate
}

func newSegmentIntersector(li *algorithms.LineIntersector, includeProper, recordIsolated bool) *segmentIntersector {
	return &segmentIntersector{li: li, includeProper: includeProper, recordIsolated: recordIsolated}
}

// isTrivial reports an intersection that is just the shared vertex of
// adjacent segments of one edge (or the closing vertex of a closed edge).
func (si *segmentIntersector) isTrivial(e0 *graph.Edge, seg0 int, e1 *graph.Edge, seg1 int) bool {
	if e0 != e1 || si.li.IntersectionNum() != 1 {
		return false
	}
	if d := seg0 - seg1; d == 1 || d == -1 {
		return true
	}
	if e0.IsClosed() {
		last := e0.NumSegments() - 1
		if (seg0 == 0 && seg1 == last) || (seg1 == 0 && seg0 == last) {
			return true
		}
	}
	return false
}

// AddIntersections tests segment seg0 of e0 against segment seg1 of e1.
func (si *segmentIntersector) AddIntersections(e0 *graph.Edge, seg0 int, e1 *graph.Edge, seg1 int) {
	if e0 == e1 && seg0 == seg1 {
		return
	}
	si.li.ComputeIntersection(e0.Coordinate(seg0), e0.Coordinate(seg0+1), e1.Coordinate(seg1), e1.Coordinate(seg1+1))
	if !si.li.HasIntersection() {
		return
	}
	if si.recordIsolated {
		e0.SetIsolated(false)
		e1.SetIsolated(false)
	}
	si.intersections++
	if si.isTrivial(e0, seg0, e1, seg1) {
		return
	}
	si.hasIntersection = true
	if si.includeProper || !si.li.IsProper() {
		e0.AddIntersections(si.li, seg0, 0)
		e1.AddIntersections(si.li, seg1, 1)
	}
	if si.li.IsProper() {
		si.properPoint = si.li.Intersection(0)
		si.hasProper = true
		if !si.isBoundaryPoint() {
			si.hasProperInterior = true
		}
	}
}

func (si *segmentIntersector) isBoundaryPoint() bool {
	for _, pts := range si.boundary {
		for _, p := range pts {
			if si.li.IsIntersection(p) {
				return true
			}
		}
	}
	return false
}
