// Package relate_test benchmarks the full relate pipeline on synthetic
// inputs from the builder package.
package relate_test

import (
	"testing"

	"github.com/againczz/geos/builder"
	"github.com/againczz/geos/core"
	"github.com/againczz/geos/matrix"
	"github.com/againczz/geos/relate"
)

var sinkIM *matrix.IntersectionMatrix

func benchRelate(b *testing.B, a, g *relate.Geometry) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		im, err := relate.Relate(a, g)
		if err != nil {
			b.Fatal(err)
		}
		sinkIM = im
	}
}

func BenchmarkRelate_PolygonPolygon(b *testing.B) {
	for _, n := range []int{16, 256} {
		pa, err := builder.RegularPolygon(n, core.Coordinate{}, 10)
		if err != nil {
			b.Fatal(err)
		}
		pb, err := builder.RegularPolygon(n+1, core.Coordinate{X: 3, Y: 1}, 10)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(sizeName(n), func(b *testing.B) {
			benchRelate(b, relate.NewPolygons(relate.Polygon{Shell: pa}), relate.NewPolygons(relate.Polygon{Shell: pb}))
		})
	}
}

func BenchmarkRelate_WalkPolygon(b *testing.B) {
	lines, err := builder.RandomWalk(8, 50, builder.WithSeed(5), builder.WithExtent(-12, -12, 12, 12))
	if err != nil {
		b.Fatal(err)
	}
	poly, err := builder.RegularPolygon(64, core.Coordinate{}, 8)
	if err != nil {
		b.Fatal(err)
	}
	benchRelate(b, relate.NewLines(lines...), relate.NewPolygons(relate.Polygon{Shell: poly}))
}

func sizeName(n int) string {
	switch {
	case n < 100:
		return "small"
	default:
		return "large"
	}
}
