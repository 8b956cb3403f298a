// SPDX-License-Identifier: MIT
// Package relate computes the DE-9IM intersection matrix of two planar
// geometries.
//
// What:
//
//	Relate(a, b) snaps both inputs to a common precision model, builds a
//	geometry graph for each (edges from lines and rings, nodes from points,
//	line endpoints and ring starts), nodes the edges against themselves and
//	against each other with a sweep-line index, merges the split edges into
//	one graph.PlanarGraph, labels every node and edge-end bundle with its
//	location in both inputs, checks face depths, and folds all labels into a
//	matrix.IntersectionMatrix.
//
// Stages (Computer.Compute):
//
//  1. Validate and snap; disjoint envelopes short-circuit.
//  2. Self-noding of each input, then cross-noding. Crossings interior to
//     a segment of each input are flagged, not noded.
//  3. Intersection nodes, copied input nodes, isolated node location.
//  4. Proper-intersection contributions by dimension pair.
//  5. Split edges into the planar graph; label node stars.
//  6. Depth propagation and face-ring depth check, when the graph is fully
//     noded (no flagged crossings).
//  7. Isolated edges; fold nodes and bundles into the matrix.
//
// Errors:
//
//	core.ErrMalformedInput   - invalid input geometry, including ordinates
//	                           that overflow the precision model.
//	*core.TopologyError      - contradictory labelling (for example a
//	                           self-intersecting ring) or depth mismatch.
//
// A Computer is single-use and not safe for concurrent use; separate
// computations share nothing and may run in parallel.
package relate
