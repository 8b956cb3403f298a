// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/samber/lo"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/relate"
)

// FromCtessum converts a ctessum/geom geometry into a relate.Geometry.
// ctessum polygons usually store open paths; they are closed here.
func FromCtessum(g geom.Geom) (*relate.Geometry, error) {
	switch t := g.(type) {
	case nil:
		return nil, ErrNilGeometry
	case geom.Point:
		return relate.NewPoints(ctessumCoord(t, 0)), nil
	case *geom.Point:
		if t == nil {
			return nil, ErrNilGeometry
		}
		return relate.NewPoints(ctessumCoord(*t, 0)), nil
	case geom.MultiPoint:
		return relate.NewPoints(lo.Map(t, ctessumCoord)...), nil
	case geom.LineString:
		return relate.NewLines(lo.Map(t, ctessumCoord)), nil
	case geom.MultiLineString:
		return relate.NewLines(lo.Map(t, func(l geom.LineString, _ int) []core.Coordinate {
			return lo.Map(l, ctessumCoord)
		})...), nil
	case geom.Polygon:
		return relate.NewPolygons(ctessumPolygon(t)), nil
	case geom.MultiPolygon:
		return relate.NewPolygons(lo.Map(t, func(p geom.Polygon, _ int) relate.Polygon {
			return ctessumPolygon(p)
		})...), nil
	}
	return nil, fmt.Errorf("%T: %w", g, ErrUnsupportedGeometry)
}

func ctessumCoord(p geom.Point, _ int) core.Coordinate {
	return core.Coordinate{X: p.X, Y: p.Y}
}

func ctessumPolygon(p geom.Polygon) relate.Polygon {
	return polygonFromRings(lo.Map(p, func(r geom.Path, _ int) []core.Coordinate {
		return lo.Map(r, ctessumCoord)
	}))
}
