// Package paths_test provides benchmarks for the path engine.
package paths_test

import (
	"testing"

	"github.com/katalvlaran/meshnet/paths"
)

// BenchmarkShortestPath_Line measures one end-to-end query on a 256-node
// directed line, the worst case for the O(V²) selection scan.
func BenchmarkShortestPath_Line(b *testing.B) {
	g := costedLine(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.ShortestPath(g, 0, 255)
	}
}

// BenchmarkDiameter_Line measures the exhaustive all-pairs diameter on a
// small line; quadratic pair iteration dominates.
func BenchmarkDiameter_Line(b *testing.B) {
	g := costedLine(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Diameter(g)
	}
}
