// Package matrix_test provides benchmarks for IntersectionMatrix merging and
// pattern matching.
package matrix_test

import (
	"testing"

	"github.com/againczz/geos/core"
	"github.com/againczz/geos/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkB bool
	sinkS string
)

func BenchmarkSetAtLeastPattern(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		im := matrix.New()
		_ = im.SetAtLeastPattern("212101212")
		sinkS = im.String()
	}
}

func BenchmarkMatches(b *testing.B) {
	im := matrix.New()
	im.SetAtLeast(core.Interior, core.Interior, matrix.Area)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB, _ = im.Matches("T*F**FFF*")
	}
}
