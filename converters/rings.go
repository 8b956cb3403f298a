// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/samber/lo"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/relate"
)

// closeRing returns pts with its first point appended when it is open.
func closeRing(pts []core.Coordinate) []core.Coordinate {
	if len(pts) > 0 && !pts[0].Equals2D(pts[len(pts)-1]) {
		pts = append(pts, pts[0])
	}
	return pts
}

// polygonFromRings treats rings[0] as the shell and the rest as holes. No
// rings gives an empty shell, which relate rejects as malformed.
func polygonFromRings(rings [][]core.Coordinate) relate.Polygon {
	if len(rings) == 0 {
		return relate.Polygon{}
	}
	p := relate.Polygon{Shell: closeRing(rings[0])}
	p.Holes = lo.Map(rings[1:], func(r []core.Coordinate, _ int) []core.Coordinate {
		return closeRing(r)
	})
	return p
}

// xy maps an [x, y, ...] slice to a coordinate, ignoring extra ordinates.
func xy(v []float64) core.Coordinate {
	return core.Coordinate{X: v[0], Y: v[1]}
}
