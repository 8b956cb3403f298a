// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/samber/lo"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/relate"
)

// FromGeoJSON converts a GeoJSON geometry object.
func FromGeoJSON(g *geojson.Geometry) (*relate.Geometry, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	switch g.Type {
	case geojson.GeometryPoint:
		if len(g.Point) < 2 {
			return nil, fmt.Errorf("converters: point with %d ordinates: %w", len(g.Point), core.ErrMalformedInput)
		}
		return relate.NewPoints(xy(g.Point)), nil
	case geojson.GeometryMultiPoint:
		return relate.NewPoints(positions(g.MultiPoint)...), nil
	case geojson.GeometryLineString:
		return relate.NewLines(positions(g.LineString)), nil
	case geojson.GeometryMultiLineString:
		return relate.NewLines(lo.Map(g.MultiLineString, func(l [][]float64, _ int) []core.Coordinate {
			return positions(l)
		})...), nil
	case geojson.GeometryPolygon:
		return relate.NewPolygons(geojsonPolygon(g.Polygon)), nil
	case geojson.GeometryMultiPolygon:
		return relate.NewPolygons(lo.Map(g.MultiPolygon, func(p [][][]float64, _ int) relate.Polygon {
			return geojsonPolygon(p)
		})...), nil
	}
	return nil, fmt.Errorf("%s: %w", g.Type, ErrUnsupportedGeometry)
}

// ParseGeoJSON decodes a geometry object, or the geometry of a Feature,
// and converts it.
func ParseGeoJSON(data []byte) (*relate.Geometry, error) {
	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return FromGeoJSON(f.Geometry)
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("converters: geojson: %w", err)
	}
	return FromGeoJSON(g)
}

// positions drops positions with fewer than two ordinates.
func positions(ps [][]float64) []core.Coordinate {
	ps = lo.Filter(ps, func(p []float64, _ int) bool { return len(p) >= 2 })
	return lo.Map(ps, func(p []float64, _ int) core.Coordinate { return xy(p) })
}

func geojsonPolygon(rings [][][]float64) relate.Polygon {
	return polygonFromRings(lo.Map(rings, func(r [][]float64, _ int) []core.Coordinate {
		return positions(r)
	}))
}
