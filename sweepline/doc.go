// SPDX-License-Identifier: MIT
// Package sweepline finds candidate pairs of edge segments whose X extents
// overlap, using a sweep over segment start/end events.
//
// What:
//
//	Every segment of every added edge contributes an insert event at the
//	low end of its X interval and a delete event at the high end. Events are
//	sorted by x, inserts before deletes at equal x, then by insertion order.
//	For each insert event, every insert event strictly after it and before
//	its own delete event is an overlapping segment. Each overlapping pair is
//	therefore reported exactly once, and a segment is never paired with
//	itself.
//
// Groups:
//
//	Segments are added with a group id. Pairs from the same group are not
//	reported, except for NoGroup which is tested against everything,
//	including other segments of the same edge (self-noding of lines).
//
// Complexity:
//
//	O(n log n + k) for n segments and k reported pairs.
package sweepline
