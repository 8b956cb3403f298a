// Package converters adapts geometry types of popular Go libraries into
// relate.Geometry:
//   - twpayne/go-geom   (FromGoGeom, also the target of WKT decoding)
//   - paulmach/orb      (FromOrb)
//   - ctessum/geom      (FromCtessum)
//   - paulmach/go.geojson (FromGeoJSON, ParseGeoJSON)
//
// Every adapter copies coordinates; the result shares no memory with the
// source. Rings are closed when the source leaves them open. Geometry
// collections and empty inputs are rejected with ErrUnsupportedGeometry and
// ErrNilGeometry respectively.
package converters
