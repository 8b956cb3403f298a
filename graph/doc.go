// SPDX-License-Identifier: MIT
// Package graph implements the labelled planar topology graph used by the
// relate engine.
//
// What:
//
//   - Label / TopologyLocation: per-input (0 and 1) locations On/Left/Right.
//   - Edge: a snapped polyline with a label, a depth delta, an isolated flag
//     and the sorted list of intersections found by noding.
//   - DirectedEdge: one traversal direction of an Edge. Directed edges live
//     in an arena owned by PlanarGraph and refer to their sym and next by
//     integer id, never by pointer cycles.
//   - Node / NodeMap: one node per snapped coordinate, kept in a google/btree
//     ordered by coordinate so that iteration is deterministic.
//   - Star: the outgoing directed edges of a node in counter-clockwise order.
//   - PlanarGraph: edges, directed edges and nodes; face-ring linking and
//     depth propagation.
//
// Depth:
//
//	Every directed edge carries depth[On|Left|Right], initialised to
//	NullDepth. Depth is the number of area inputs whose interior covers the
//	face on that side. Reassigning a different value is a
//	*core.TopologyError.
//
// Complexity:
//
//	AddEdge is O(log N + d) (node lookup, sorted star insert of degree d).
//	EdgeRings and PropagateDepths are O(E) plus star sizes.
//
// Errors:
//
//	core.ErrMalformedInput   - NewEdge with fewer than two distinct points.
//	*core.TopologyError      - depth conflicts, depth mismatch around a node
//	                           or a face ring, unterminated ring walk.
package graph
