// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/google/btree"

	"github.com/againczz/geos/core"
)

// Node is a unique snapped coordinate of the graph with its label and the
// star of outgoing directed edges.
type Node struct {
	// Label is the node's location relative to both inputs.
	Label Label

	id    int
	coord core.Coordinate
	star  Star
}

// ID is the creation index of the node within its NodeMap.
func (n *Node) ID() int { return n.id }

// Coordinate is the node location.
func (n *Node) Coordinate() core.Coordinate { return n.coord }

// Star returns the node's outgoing directed edges.
func (n *Node) Star() *Star { return &n.star }

// IsIsolated reports whether the node has no incident edges.
func (n *Node) IsIsolated() bool { return n.star.Len() == 0 }

func (n *Node) String() string {
	return fmt.Sprintf("node %s %s degree=%d", n.coord, n.Label, n.star.Len())
}

const nodeDegree = 16

// NodeMap stores nodes keyed by coordinate in X, then Y order.
type NodeMap struct {
	g    *PlanarGraph
	tree *btree.BTreeG[*Node]
	n    int
}

// NewNodeMap returns an empty map. Nodes of a standalone map have no stars
// backed by directed edges; PlanarGraph owns the map used for stars.
func NewNodeMap() *NodeMap { return newNodeMap(nil) }

func newNodeMap(g *PlanarGraph) *NodeMap {
	return &NodeMap{
		g: g,
		tree: btree.NewG(nodeDegree, func(a, b *Node) bool {
			return a.coord.Less(b.coord)
		}),
	}
}

// AddNode returns the node at c, creating it with a null label if absent.
func (m *NodeMap) AddNode(c core.Coordinate) *Node {
	if n := m.Find(c); n != nil {
		return n
	}
	n := &Node{
		Label: NewLineLabel(core.None),
		id:    m.n,
		coord: c,
		star:  Star{g: m.g},
	}
	m.n++
	m.tree.ReplaceOrInsert(n)
	return n
}

// Find returns the node at c or nil.
func (m *NodeMap) Find(c core.Coordinate) *Node {
	n, ok := m.tree.Get(&Node{coord: c})
	if !ok {
		return nil
	}
	return n
}

// Len is the number of nodes.
func (m *NodeMap) Len() int { return m.tree.Len() }

// Ascend calls fn for every node in coordinate order until fn returns false.
func (m *NodeMap) Ascend(fn func(*Node) bool) { m.tree.Ascend(fn) }

// Nodes returns all nodes in coordinate order.
func (m *NodeMap) Nodes() []*Node {
	out := make([]*Node, 0, m.tree.Len())
	m.tree.Ascend(func(n *Node) bool {
		out = append(out, n)
		return true
	})
	return out
}
