// SPDX-License-Identifier: MIT

package relate

import (
	"github.com/againczz/geos/algorithms"
	"github.com/againczz/geos/core"
)

// locate classifies p against g. Boundaries of multiple components combine
// with the mod-2 rule: an odd number of boundary hits is Boundary, an even
// non-zero number is Interior.
func locate(p core.Coordinate, g *Geometry) core.Location {
	if g.IsEmpty() {
		return core.Exterior
	}
	inside := false
	boundaries := 0
	update := func(loc core.Location) {
		switch loc {
		case core.Interior:
			inside = true
		case core.Boundary:
			boundaries++
		}
	}

	for _, q := range g.Points {
		if q.Equals2D(p) {
			update(core.Interior)
		}
	}
	for _, l := range g.Lines {
		update(locateOnLine(p, l))
	}
	for _, poly := range g.Polygons {
		update(locateInPolygon(p, poly))
	}

	switch {
	case boundaries%2 == 1:
		return core.Boundary
	case boundaries > 0 || inside:
		return core.Interior
	}
	return core.Exterior
}

// locateInArea classifies p against the polygonal components of g only;
// non-areal geometries are Exterior everywhere.
func locateInArea(p core.Coordinate, g *Geometry) core.Location {
	for _, poly := range g.Polygons {
		if loc := locateInPolygon(p, poly); loc != core.Exterior {
			return loc
		}
	}
	return core.Exterior
}

func locateOnLine(p core.Coordinate, line []core.Coordinate) core.Location {
	if !core.EnvelopeContains(core.EnvelopeOf(line), p) {
		return core.Exterior
	}
	first, last := line[0], line[len(line)-1]
	if !first.Equals2D(last) && (p.Equals2D(first) || p.Equals2D(last)) {
		return core.Boundary
	}
	if algorithms.IsOnLine(p, line) {
		return core.Interior
	}
	return core.Exterior
}

func locateInPolygon(p core.Coordinate, poly Polygon) core.Location {
	switch algorithms.LocateInRing(p, poly.Shell) {
	case core.Exterior:
		return core.Exterior
	case core.Boundary:
		return core.Boundary
	}
	for _, h := range poly.Holes {
		switch algorithms.LocateInRing(p, h) {
		case core.Interior:
			return core.Exterior
		case core.Boundary:
			return core.Boundary
		}
	}
	return core.Interior
}
