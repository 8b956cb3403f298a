// SPDX-License-Identifier: MIT

package relate

import (
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/graph"
	"github.com/againczz/geos/matrix"
)

// relateNode pairs a graph node with its labelled bundles.
type relateNode struct {
	node    *graph.Node
	bundles []*edgeBundle
}

// computeIM folds the node's own label: a shared point has dimension 0.
func (rn relateNode) computeIM(im *matrix.IntersectionMatrix) {
	l := rn.node.Label
	im.SetAtLeastIfValid(l.On(0), l.On(1), matrix.Point)
}

// updateIMFromEdges folds every bundle label as an edge contribution.
func (rn relateNode) updateIMFromEdges(im *matrix.IntersectionMatrix) {
	for _, b := range rn.bundles {
		updateIMFromLabel(b.label, im)
	}
}

// updateIMFromLabel folds an edge label: On pairs meet in a line, and for
// area labels each side pair meets in an area.
func updateIMFromLabel(l graph.Label, im *matrix.IntersectionMatrix) {
	im.SetAtLeastIfValid(l.On(0), l.On(1), matrix.Line)
	if l.IsArea() {
		im.SetAtLeastIfValid(l.Location(0, core.Left), l.Location(1, core.Left), matrix.Area)
		im.SetAtLeastIfValid(l.Location(0, core.Right), l.Location(1, core.Right), matrix.Area)
	}
}
