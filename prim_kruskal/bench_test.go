package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/primgraph/prim_kruskal"
)

// BenchmarkPrim measures Prim on a connected 2000-node bounded-degree graph.
func BenchmarkPrim(b *testing.B) {
	g := connectedRandom(b, 2000, 42) // pre-build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 0)
	}
}

// BenchmarkKruskal measures Kruskal on the same graph.
func BenchmarkKruskal(b *testing.B) {
	g := connectedRandom(b, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}
