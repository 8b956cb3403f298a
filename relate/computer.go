// SPDX-License-Identifier: MIT

package relate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
	"github.com/againczz/geos/matrix"
	"github.com/againczz/geos/precision"
	"github.com/againczz/geos/sweepline"
)

// Stats describes the graph built by the last Compute.
//
// ProperIntersections reports a crossing interior to a segment of each
// input; such crossings are not nodes of the graph. DepthChecked reports
// whether depth propagation ran, which needs a graph without them.
type Stats struct {
	Nodes               int
	Edges               int
	DirectedEdges       int
	Overlaps            int
	Intersections       int
	ProperIntersections bool
	LineEdges           int
	InteriorAreaEdges   int
	IsolatedEdges       int
	Rings               int
	DepthChecked        bool
}

// Fields renders s for structured logging.
func (s Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"nodes":                s.Nodes,
		"edges":                s.Edges,
		"directed_edges":       s.DirectedEdges,
		"overlaps":             s.Overlaps,
		"intersections":        s.Intersections,
		"proper_intersections": s.ProperIntersections,
		"line_edges":           s.LineEdges,
		"interior_area_edges":  s.InteriorAreaEdges,
		"isolated_edges":       s.IsolatedEdges,
		"rings":                s.Rings,
		"depth_checked":        s.DepthChecked,
	}
}

// Computer computes the intersection matrix of two geometries. A Computer
// is single-use and not safe for concurrent use; separate Computers share
// nothing.
type Computer struct {
	cfg   config
	pm    *precision.Model
	arg   [2]*Geometry
	gg    [2]*geometryGraph
	li    *algorithms.LineIntersector
	g     *graph.PlanarGraph
	nodes []relateNode

	isolated []*graph.Edge
	stats    Stats
	done     bool
}

// NewComputer validates a and b and snaps them to the chosen precision
// model: the WithPrecisionModel override if given, else the coarser of the
// two inputs' models.
//
// Errors:
//   - core.ErrMalformedInput for a nil, mixed-kind or degenerate input.
func NewComputer(a, b *Geometry, opts ...Option) (*Computer, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("relate: nil geometry: %w", core.ErrMalformedInput)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	pm := cfg.pm
	if pm == nil {
		pm = precision.Coarser(modelOf(a), modelOf(b))
	}

	c := &Computer{cfg: cfg, pm: pm, li: &algorithms.LineIntersector{Precision: pm}}
	for i, in := range [2]*Geometry{a, b} {
		s, err := in.snapped(pm)
		if err != nil {
			return nil, fmt.Errorf("relate: argument %d: %w", i, err)
		}
		c.arg[i] = s
	}
	return c, nil
}

func modelOf(g *Geometry) *precision.Model {
	if g.Precision == nil {
		return precision.NewFloating()
	}
	return g.Precision
}

// Relate computes the DE-9IM matrix of a and b.
//
// Errors:
//   - core.ErrMalformedInput for invalid inputs.
//   - *core.TopologyError (matching core.ErrTopologyInconsistency) when the
//     inputs produce an inconsistent labelling, e.g. a self-crossing ring.
func Relate(a, b *Geometry, opts ...Option) (*matrix.IntersectionMatrix, error) {
	c, err := NewComputer(a, b, opts...)
	if err != nil {
		return nil, err
	}
	return c.Compute()
}

// Precision is the model the inputs were snapped to.
func (c *Computer) Precision() *precision.Model { return c.pm }

// Stats describes the last computation.
func (c *Computer) Stats() Stats { return c.stats }

// Graph is the planar graph of the last computation, or nil when the
// envelopes were disjoint.
func (c *Computer) Graph() *graph.PlanarGraph { return c.g }

// Compute runs the pipeline and returns the matrix. A second call returns
// an error.
func (c *Computer) Compute() (*matrix.IntersectionMatrix, error) {
	if c.done {
		return nil, fmt.Errorf("relate: computer already used: %w", core.ErrInvalidConfiguration)
	}
	c.done = true
	log := c.cfg.log

	im := matrix.New()
	im.SetAtLeast(core.Exterior, core.Exterior, matrix.Area)

	for i := range c.arg {
		gg, err := newGeometryGraph(i, c.arg[i])
		if err != nil {
			return nil, fmt.Errorf("relate: argument %d: %w", i, err)
		}
		c.gg[i] = gg
	}

	if !core.EnvelopesIntersect(c.arg[0].Envelope(), c.arg[1].Envelope()) {
		c.computeDisjointIM(im)
		log.WithField("precision", c.pm.String()).Debug("relate: disjoint envelopes")
		return im, nil
	}

	selfProper := false
	for i := range c.gg {
		si := newSegmentIntersector(c.li, true, false)
		c.stats.Overlaps += c.gg[i].computeSelfNodes(si)
		c.stats.Intersections += si.intersections
		selfProper = selfProper || si.hasProper
	}

	cross := c.computeEdgeIntersections()
	log.WithFields(logrus.Fields{
		"overlaps":      c.stats.Overlaps,
		"intersections": c.stats.Intersections,
		"proper":        cross.hasProper,
	}).Debug("relate: noding done")

	c.g = graph.New()
	c.computeIntersectionNodes(0)
	c.computeIntersectionNodes(1)
	c.copyNodesAndLabels(0)
	c.copyNodesAndLabels(1)
	c.labelIsolatedNodes()
	if err := c.computeProperIntersectionIM(cross, im); err != nil {
		return nil, err
	}

	for _, gg := range c.gg {
		for _, e := range gg.edges {
			c.g.AddEdges(e.SplitEdges())
		}
	}

	if err := c.labelNodeEdges(); err != nil {
		return nil, fmt.Errorf("relate: labelling: %w", err)
	}
	// Depths are only defined on a fully noded graph: an unnoded proper
	// crossing, or a snapped self-crossing of a line, leaves edges that
	// cross without sharing a node.
	if c.cfg.depthCheck && !cross.hasProper && !selfProper {
		if err := c.checkDepths(); err != nil {
			return nil, fmt.Errorf("relate: depth check: %w", err)
		}
		c.stats.DepthChecked = true
	}

	c.labelIsolatedEdges(0, 1)
	c.labelIsolatedEdges(1, 0)
	c.updateIM(im)

	c.collectStats()
	log.WithFields(c.stats.Fields()).Debug("relate: matrix computed")
	return im, nil
}

func (c *Computer) computeDisjointIM(im *matrix.IntersectionMatrix) {
	if a := c.arg[0]; !a.IsEmpty() {
		im.SetAtLeast(core.Interior, core.Exterior, a.Dimension())
		im.SetAtLeast(core.Boundary, core.Exterior, a.BoundaryDimension())
	}
	if b := c.arg[1]; !b.IsEmpty() {
		im.SetAtLeast(core.Exterior, core.Interior, b.Dimension())
		im.SetAtLeast(core.Exterior, core.Boundary, b.BoundaryDimension())
	}
}

// computeEdgeIntersections nodes the two inputs against each other and
// marks every edge touched by the other input as non-isolated. Proper
// crossings are only flagged; computeProperIntersectionIM accounts for them.
func (c *Computer) computeEdgeIntersections() *segmentIntersector {
	si := newSegmentIntersector(c.li, false, true)
	si.boundary[0] = c.gg[0].boundaryNodes()
	si.boundary[1] = c.gg[1].boundaryNodes()

	idx := sweepline.New()
	idx.Add(c.gg[0].edges, 0)
	idx.Add(c.gg[1].edges, 1)
	idx.ComputeIntersections(si)

	c.stats.Overlaps += idx.Overlaps()
	c.stats.Intersections += si.intersections
	c.stats.ProperIntersections = si.hasProper
	return si
}

// computeIntersectionNodes creates a node for every intersection on an edge
// of input i. Ring intersections are boundary points; line intersections are
// interior unless already known.
func (c *Computer) computeIntersectionNodes(i int) {
	for _, e := range c.gg[i].edges {
		loc := e.Label.On(i)
		for _, ei := range e.Intersections().Items() {
			n := c.g.AddNode(ei.Coord)
			if loc == core.Boundary {
				n.Label.SetLocation(i, core.On, core.Boundary)
			} else if n.Label.IsNull(i) {
				n.Label.SetLocation(i, core.On, core.Interior)
			}
		}
	}
}

// copyNodesAndLabels copies the vertices of input i with their own label,
// which overrides whatever the intersection pass set.
func (c *Computer) copyNodesAndLabels(i int) {
	c.gg[i].nodes.Ascend(func(gn *graph.Node) bool {
		n := c.g.AddNode(gn.Coordinate())
		n.Label.SetLocation(i, core.On, gn.Label.On(i))
		return true
	})
}

// labelIsolatedNodes locates every node known to only one input in the
// other input.
func (c *Computer) labelIsolatedNodes() {
	c.g.Nodes().Ascend(func(n *graph.Node) bool {
		if n.Label.GeometryCount() != 1 {
			return true
		}
		target := 1
		if n.Label.IsNull(0) {
			target = 0
		}
		n.Label.SetAllLocations(target, locate(n.Coordinate(), c.arg[target]))
		return true
	})
}

func (c *Computer) computeProperIntersectionIM(si *segmentIntersector, im *matrix.IntersectionMatrix) error {
	dimA, dimB := c.arg[0].Dimension(), c.arg[1].Dimension()
	var patterns []string
	switch {
	case dimA == matrix.Area && dimB == matrix.Area:
		if si.hasProper {
			patterns = append(patterns, "212101212")
		}
	case dimA == matrix.Area && dimB == matrix.Line:
		if si.hasProper {
			patterns = append(patterns, "FFF0FFFF2")
		}
		if si.hasProperInterior {
			patterns = append(patterns, "1FFFFF1FF")
		}
	case dimA == matrix.Line && dimB == matrix.Area:
		if si.hasProper {
			patterns = append(patterns, "F0FFFFFF2")
		}
		if si.hasProperInterior {
			patterns = append(patterns, "1F1FFFFFF")
		}
	case dimA == matrix.Line && dimB == matrix.Line:
		if si.hasProperInterior {
			patterns = append(patterns, "0FFFFFFFF")
		}
	}
	for _, p := range patterns {
		if err := im.SetAtLeastPattern(p); err != nil {
			return fmt.Errorf("relate: proper intersection pattern: %w", err)
		}
	}
	return nil
}

func (c *Computer) labelNodeEdges() error {
	var err error
	c.g.Nodes().Ascend(func(n *graph.Node) bool {
		var bundles []*edgeBundle
		bundles, err = labelStar(n, c.arg)
		if err != nil {
			return false
		}
		c.nodes = append(c.nodes, relateNode{node: n, bundles: bundles})
		return true
	})
	return err
}

// checkDepths propagates area depths through the graph and verifies that
// every face ring sees a single depth. The depth right of a seed edge is the
// number of area inputs whose interior lies there.
func (c *Computer) checkDepths() error {
	seed := func(de *graph.DirectedEdge) int {
		d := 0
		l := de.Label()
		for i := 0; i < 2; i++ {
			if c.arg[i].Dimension() != matrix.Area {
				continue
			}
			loc := l.On(i)
			if l.IsAreaOf(i) {
				loc = l.Location(i, core.Right)
			}
			if loc == core.Interior {
				d++
			}
		}
		return d
	}
	if err := c.g.PropagateDepths(seed); err != nil {
		return err
	}
	c.g.LinkAllDirectedEdges()
	if err := c.g.CheckRingDepths(); err != nil {
		return err
	}
	rings, err := c.g.EdgeRings()
	if err != nil {
		return err
	}
	c.stats.Rings = len(rings)
	return nil
}

// labelIsolatedEdges locates each edge of input i that the other input never
// touched. Such an edge lies entirely in one location of the target.
func (c *Computer) labelIsolatedEdges(i, target int) {
	tg := c.arg[target]
	for _, e := range c.gg[i].edges {
		if !e.IsIsolated() {
			continue
		}
		loc := core.Exterior
		if tg.Dimension() > matrix.Point {
			loc = locate(e.Coordinate(0), tg)
		}
		e.Label.SetAllLocations(target, loc)
		c.isolated = append(c.isolated, e)
	}
}

func (c *Computer) updateIM(im *matrix.IntersectionMatrix) {
	for _, e := range c.isolated {
		updateIMFromLabel(e.Label, im)
	}
	for _, rn := range c.nodes {
		rn.computeIM(im)
		rn.updateIMFromEdges(im)
	}
}

func (c *Computer) collectStats() {
	c.stats.Nodes = c.g.Nodes().Len()
	c.stats.Edges = len(c.g.Edges())
	c.stats.DirectedEdges = len(c.g.DirectedEdges())
	c.stats.IsolatedEdges = len(c.isolated)
	for i, de := range c.g.DirectedEdges() {
		if i%2 != 0 {
			continue
		}
		if de.IsLineEdge() {
			c.stats.LineEdges++
		}
		if de.IsInteriorAreaEdge() {
			c.stats.InteriorAreaEdges++
		}
	}
}
