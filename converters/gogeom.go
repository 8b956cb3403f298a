// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/relate"
)

// FromGoGeom converts a go-geom point, line or polygon type (single or
// multi) into a relate.Geometry. Z and M ordinates are dropped.
func FromGoGeom(g geom.T) (*relate.Geometry, error) {
	switch t := g.(type) {
	case nil:
		return nil, ErrNilGeometry
	case *geom.Point:
		if t == nil || t.Empty() {
			return nil, ErrNilGeometry
		}
		return relate.NewPoints(goGeomCoord(t.Coords(), 0)), nil
	case *geom.MultiPoint:
		return relate.NewPoints(goGeomCoords(t.Coords())...), nil
	case *geom.LineString:
		return relate.NewLines(goGeomCoords(t.Coords())), nil
	case *geom.MultiLineString:
		return relate.NewLines(lo.Map(t.Coords(), func(l []geom.Coord, _ int) []core.Coordinate {
			return goGeomCoords(l)
		})...), nil
	case *geom.Polygon:
		return relate.NewPolygons(goGeomPolygon(t.Coords())), nil
	case *geom.MultiPolygon:
		return relate.NewPolygons(lo.Map(t.Coords(), func(p [][]geom.Coord, _ int) relate.Polygon {
			return goGeomPolygon(p)
		})...), nil
	}
	return nil, fmt.Errorf("%T: %w", g, ErrUnsupportedGeometry)
}

// ParseWKT decodes a WKT string through go-geom and converts the result.
func ParseWKT(s string) (*relate.Geometry, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("converters: wkt: %w", err)
	}
	return FromGoGeom(g)
}

func goGeomCoord(c geom.Coord, _ int) core.Coordinate {
	return core.Coordinate{X: c.X(), Y: c.Y()}
}

func goGeomCoords(cs []geom.Coord) []core.Coordinate {
	return lo.Map(cs, goGeomCoord)
}

func goGeomPolygon(rings [][]geom.Coord) relate.Polygon {
	return polygonFromRings(lo.Map(rings, func(r []geom.Coord, _ int) []core.Coordinate {
		return goGeomCoords(r)
	}))
}
