package builder_test

import (
	"testing"

	"github.com/katalvlaran/primgraph/builder"
)

// BenchmarkGenerateRandomEdges_2000 measures the O(n²) pass at the default scale.
func BenchmarkGenerateRandomEdges_2000(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, _ := builder.Create(2000)
		if err := builder.GenerateRandomEdges(g, builder.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRandomSparse_500 measures G(n,p) sampling.
func BenchmarkRandomSparse_500(b *testing.B) {
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.BuildGraph(500, opts, builder.RandomSparse(0.02)); err != nil {
			b.Fatal(err)
		}
	}
}
