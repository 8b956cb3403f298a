// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/againczz/geos/core"
)

// PlanarGraph is the merged topology graph. It owns the edge and
// directed-edge arenas and the node map. Not safe for concurrent mutation.
type PlanarGraph struct {
	nodes *NodeMap
	edges []*Edge
	des   []*DirectedEdge
}

// New returns an empty graph.
func New() *PlanarGraph {
	g := &PlanarGraph{}
	g.nodes = newNodeMap(g)
	return g
}

// AddNode returns the node at c, creating it if needed.
func (g *PlanarGraph) AddNode(c core.Coordinate) *Node { return g.nodes.AddNode(c) }

// Find returns the node at c or nil.
func (g *PlanarGraph) Find(c core.Coordinate) *Node { return g.nodes.Find(c) }

// Nodes returns the node map.
func (g *PlanarGraph) Nodes() *NodeMap { return g.nodes }

// Edges returns the edges in insertion order.
func (g *PlanarGraph) Edges() []*Edge { return g.edges }

// DirectedEdges returns the directed edges by id.
func (g *PlanarGraph) DirectedEdges() []*DirectedEdge { return g.des }

// DirectedEdge returns the directed edge with the given id.
func (g *PlanarGraph) DirectedEdge(id int) *DirectedEdge { return g.des[id] }

// AddEdge inserts e as a forward/backward pair of directed edges and adds
// each to the star of its origin node.
func (g *PlanarGraph) AddEdge(e *Edge) (fwd, bwd *DirectedEdge) {
	edgeID := len(g.edges)
	g.edges = append(g.edges, e)

	id := len(g.des)
	fwd = newDirectedEdge(g, id, edgeID, e, true)
	bwd = newDirectedEdge(g, id+1, edgeID, e, false)
	g.des = append(g.des, fwd, bwd)

	g.nodes.AddNode(fwd.p0).star.insert(fwd)
	g.nodes.AddNode(bwd.p0).star.insert(bwd)
	return fwd, bwd
}

// AddEdges inserts every edge of es.
func (g *PlanarGraph) AddEdges(es []*Edge) {
	for _, e := range es {
		g.AddEdge(e)
	}
}

// LinkAllDirectedEdges links the next pointers of every node star.
func (g *PlanarGraph) LinkAllDirectedEdges() {
	g.nodes.Ascend(func(n *Node) bool {
		n.star.LinkDirectedEdges()
		return true
	})
}
