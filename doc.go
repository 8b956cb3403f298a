// Package geos is an in-memory planar topology engine: it nodes two planar
// geometries against each other, labels every node and edge of the merged
// graph with its location relative to each input, and reports the result as
// a DE-9IM intersection matrix.
//
// 🚀 What is inside?
//
//	• Precision models: floating, floating-single and fixed-scale snapping
//	• Robust predicates: orientation with exact fallback, segment intersection
//	• Topology graph: labels, edges, directed-edge arena, ordered node map
//	• Sweep-line noding: X-overlap candidate pairs, each reported once
//	• Relate: node/edge-end aggregation into an IntersectionMatrix
//
// ✨ Why use it?
//
//   - Deterministic – identical inputs produce identical graphs and matrices
//   - Explicit errors – topology conflicts surface as *core.TopologyError
//   - Pluggable inputs – adapters for go-geom, orb, ctessum/geom and GeoJSON
//
// Everything is organized under flat subpackages:
//
//	algorithms/ — orientation, ring predicates, robust line intersector
//	builder/    — synthetic geometries for tests and benchmarks
//	cmd/        — georelate command line tool
//	converters/ — adapters from third-party geometry types
//	core/       — Coordinate, Location, Position, envelopes, sentinel errors
//	graph/      — Label, Edge, DirectedEdge, Node, Star, PlanarGraph
//	matrix/     — IntersectionMatrix and Dimension
//	precision/  — PrecisionModel
//	relate/     — input model, geometry graphs and the relate computer
//	sweepline/  — sweep-line segment index
//
// Quick example:
//
//	    +---------+
//	    |    A    |        Relate(A, B) -> "1010F0212"
//	 ---+---------+---  B
//	    |         |
//	    +---------+
//
//	go get github.com/againczz/geos
package geos
