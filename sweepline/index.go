// SPDX-License-Identifier: MIT
// Package: geos/sweepline
//
// index.go — sweep-line candidate index over edge segments.
//
// Contract:
//   • Every segment contributes an insert event at its minimum X and a
//     delete event at its maximum X (an r1.Interval from golang/geo).
//   • Events sort by x, then inserts before deletes, then insertion
//     sequence. Touching X-intervals therefore overlap, and the order of
//     reported pairs is reproducible.
//   • A pair is reported exactly once, from the segment whose insert event
//     sorts first, and never pairs a segment with itself.
//   • Segments sharing a group (other than NoGroup) are never paired.
//     Y-overlap is not tested; the SegmentIntersector filters it.
//
// Complexity:
//   • Add/AddEach: O(s) for s segments. The first ComputeIntersections
//     sorts once in O(n log n) for n events.
//   • ComputeIntersections: O(n + k) for k X-overlapping pairs.

package sweepline

import (
	"sort"

	"github.com/golang/geo/r1"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
)

// NoGroup places segments in no group: they are tested against every
// other segment.
const NoGroup = -1

// SegmentIntersector receives candidate segment pairs. Segment seg0 of e0
// runs from e0.Coordinate(seg0) to e0.Coordinate(seg0+1).
type SegmentIntersector interface {
	AddIntersections(e0 *graph.Edge, seg0 int, e1 *graph.Edge, seg1 int)
}

type segment struct {
	edge  *graph.Edge
	index int
	xr    r1.Interval
	group int
}

type eventKind int

const (
	insertEvent eventKind = iota
	deleteEvent
)

type event struct {
	x      float64
	kind   eventKind
	seq    int
	seg    *segment
	delete int // for inserts: index of the matching delete after sorting
}

// Index is a sweep-line segment index. Add edges, then call
// ComputeIntersections. Not safe for concurrent use.
type Index struct {
	events    []*event
	inserts   []*event
	nextGroup int
	prepared  bool
	overlaps  int
}

// New returns an empty index.
func New() *Index { return &Index{} }

// Add inserts all segments of edges into group.
func (x *Index) Add(edges []*graph.Edge, group int) {
	if group >= x.nextGroup {
		x.nextGroup = group + 1
	}
	for _, e := range edges {
		x.addEdge(e, group)
	}
}

// AddEach inserts every edge into a fresh group of its own, so that only
// pairs from different edges are reported.
func (x *Index) AddEach(edges []*graph.Edge) {
	for _, e := range edges {
		x.addEdge(e, x.nextGroup)
		x.nextGroup++
	}
}

func (x *Index) addEdge(e *graph.Edge, group int) {
	pts := e.Points()
	for i := 0; i+1 < len(pts); i++ {
		s := &segment{edge: e, index: i, xr: core.XInterval(pts[i], pts[i+1]), group: group}
		ins := &event{x: s.xr.Lo, kind: insertEvent, seq: len(x.events), seg: s}
		del := &event{x: s.xr.Hi, kind: deleteEvent, seq: len(x.events) + 1, seg: s}
		x.events = append(x.events, ins, del)
		x.inserts = append(x.inserts, ins)
	}
	x.prepared = false
}

// Len is the number of indexed segments.
func (x *Index) Len() int { return len(x.inserts) }

func (x *Index) prepare() {
	if x.prepared {
		return
	}
	sort.Slice(x.events, func(i, j int) bool {
		a, b := x.events[i], x.events[j]
		if a.x != b.x {
			return a.x < b.x
		}
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.seq < b.seq
	})
	pos := make(map[*segment]int, len(x.inserts))
	for i, ev := range x.events {
		if ev.kind == insertEvent {
			pos[ev.seg] = i
		}
	}
	for i, ev := range x.events {
		if ev.kind == deleteEvent {
			x.events[pos[ev.seg]].delete = i
		}
	}
	x.prepared = true
}

// ComputeIntersections reports every X-overlapping segment pair from
// different groups (or involving NoGroup) to si exactly once.
func (x *Index) ComputeIntersections(si SegmentIntersector) {
	x.prepare()
	x.overlaps = 0
	for i, ev := range x.events {
		if ev.kind != insertEvent {
			continue
		}
		s0 := ev.seg
		for j := i + 1; j < ev.delete; j++ {
			other := x.events[j]
			if other.kind != insertEvent {
				continue
			}
			s1 := other.seg
			if s0.group != NoGroup && s0.group == s1.group {
				continue
			}
			x.overlaps++
			si.AddIntersections(s0.edge, s0.index, s1.edge, s1.index)
		}
	}
}

// Overlaps is the number of pairs reported by the last ComputeIntersections.
func (x *Index) Overlaps() int { return x.overlaps }
