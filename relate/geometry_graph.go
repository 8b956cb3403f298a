// SPDX-License-Identifier: MIT

package relate

import (
	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
	"github.com/againczz/geos/matrix"
	"github.com/againczz/geos/sweepline"
)

// geometryGraph holds the unsplit edges and the labelled vertices of one
// input, before merging into the planar graph.
type geometryGraph struct {
	index int
	geom  *Geometry
	dim   matrix.Dimension
	edges []*graph.Edge
	nodes *graph.NodeMap
}

// newGeometryGraph builds the graph of input index from an already snapped
// geometry.
func newGeometryGraph(index int, g *Geometry) (*geometryGraph, error) {
	gg := &geometryGraph{
		index: index,
		geom:  g,
		dim:   g.Dimension(),
		nodes: graph.NewNodeMap(),
	}
	for _, p := range g.Points {
		gg.insertPoint(p, core.Interior)
	}
	for _, l := range g.Lines {
		if err := gg.addLine(l); err != nil {
			return nil, err
		}
	}
	for _, poly := range g.Polygons {
		if err := gg.addRing(poly.Shell, core.Exterior, core.Interior); err != nil {
			return nil, err
		}
		for _, h := range poly.Holes {
			if err := gg.addRing(h, core.Interior, core.Exterior); err != nil {
				return nil, err
			}
		}
	}
	return gg, nil
}

func (gg *geometryGraph) addLine(pts []core.Coordinate) error {
	e, err := graph.NewEdge(pts, graph.NewGeomLineLabel(gg.index, core.Interior))
	if err != nil {
		return err
	}
	gg.edges = append(gg.edges, e)
	gg.insertBoundaryPoint(pts[0])
	gg.insertBoundaryPoint(pts[len(pts)-1])
	return nil
}

// addRing adds a ring whose sides are (cwLeft, cwRight) when it runs
// clockwise, swapped otherwise.
func (gg *geometryGraph) addRing(ring []core.Coordinate, cwLeft, cwRight core.Location) error {
	left, right := cwLeft, cwRight
	if algorithms.IsCCW(ring) {
		left, right = cwRight, cwLeft
	}
	e, err := graph.NewEdge(ring, graph.NewGeomAreaLabel(gg.index, core.Boundary, left, right))
	if err != nil {
		return err
	}
	if left == core.Interior {
		e.SetDepthDelta(1)
	} else {
		e.SetDepthDelta(-1)
	}
	gg.edges = append(gg.edges, e)
	gg.insertPoint(ring[0], core.Boundary)
	return nil
}

func (gg *geometryGraph) insertPoint(p core.Coordinate, loc core.Location) {
	n := gg.nodes.AddNode(p)
	n.Label.SetLocation(gg.index, core.On, loc)
}

// insertBoundaryPoint applies the mod-2 rule: a point that closes an even
// number of line ends is interior.
func (gg *geometryGraph) insertBoundaryPoint(p core.Coordinate) {
	n := gg.nodes.AddNode(p)
	loc := core.Boundary
	if n.Label.On(gg.index) == core.Boundary {
		loc = core.Interior
	}
	n.Label.SetLocation(gg.index, core.On, loc)
}

func (gg *geometryGraph) isBoundaryNode(p core.Coordinate) bool {
	n := gg.nodes.Find(p)
	return n != nil && n.Label.On(gg.index) == core.Boundary
}

// boundaryNodes lists the coordinates of nodes on the input's boundary.
func (gg *geometryGraph) boundaryNodes() []core.Coordinate {
	var out []core.Coordinate
	gg.nodes.Ascend(func(n *graph.Node) bool {
		if n.Label.On(gg.index) == core.Boundary {
			out = append(out, n.Coordinate())
		}
		return true
	})
	return out
}

// computeSelfNodes intersects the input's edges with each other. Ring edges
// are only tested against other edges; line edges against everything.
func (gg *geometryGraph) computeSelfNodes(si *segmentIntersector) int {
	idx := sweepline.New()
	if gg.dim == matrix.Area {
		idx.AddEach(gg.edges)
	} else {
		idx.Add(gg.edges, sweepline.NoGroup)
	}
	idx.ComputeIntersections(si)
	gg.addSelfIntersectionNodes()
	return idx.Overlaps()
}

func (gg *geometryGraph) addSelfIntersectionNodes() {
	for _, e := range gg.edges {
		loc := e.Label.On(gg.index)
		for _, ei := range e.Intersections().Items() {
			if gg.isBoundaryNode(ei.Coord) {
				continue
			}
			gg.insertPoint(ei.Coord, loc)
		}
	}
}
