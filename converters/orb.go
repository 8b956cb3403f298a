// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/samber/lo"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/relate"
)

// FromOrb converts an orb point, line, ring or polygon type into a
// relate.Geometry. An orb.Ring is read as a polygon without holes.
func FromOrb(g orb.Geometry) (*relate.Geometry, error) {
	switch t := g.(type) {
	case nil:
		return nil, ErrNilGeometry
	case orb.Point:
		return relate.NewPoints(orbCoord(t, 0)), nil
	case orb.MultiPoint:
		return relate.NewPoints(lo.Map(t, orbCoord)...), nil
	case orb.LineString:
		return relate.NewLines(orbPath(t)), nil
	case orb.MultiLineString:
		return relate.NewLines(lo.Map(t, func(l orb.LineString, _ int) []core.Coordinate {
			return orbPath(l)
		})...), nil
	case orb.Ring:
		return relate.NewPolygons(orbPolygon(orb.Polygon{t})), nil
	case orb.Polygon:
		return relate.NewPolygons(orbPolygon(t)), nil
	case orb.MultiPolygon:
		return relate.NewPolygons(lo.Map(t, func(p orb.Polygon, _ int) relate.Polygon {
			return orbPolygon(p)
		})...), nil
	}
	return nil, fmt.Errorf("%T: %w", g, ErrUnsupportedGeometry)
}

func orbCoord(p orb.Point, _ int) core.Coordinate {
	return core.Coordinate{X: p.X(), Y: p.Y()}
}

func orbPath(pts []orb.Point) []core.Coordinate {
	return lo.Map(pts, orbCoord)
}

func orbPolygon(p orb.Polygon) relate.Polygon {
	return polygonFromRings(lo.Map(p, func(r orb.Ring, _ int) []core.Coordinate {
		return orbPath(r)
	}))
}
