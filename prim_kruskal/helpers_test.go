package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/primgraph/builder"
	"github.com/katalvlaran/primgraph/core"
	"github.com/stretchr/testify/require"
)

// diamond builds the four-node graph 0-1(1), 0-2(4), 1-2(2), 1-3(3).
// Its unique MST is {0-1, 1-2, 1-3} with total weight 6.
func diamond(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 3},
	})
	require.NoError(t, err)

	return g
}

// twoIslands builds {0,1,2} and {3,4} with no edge between them.
func twoIslands(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(5, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 3, To: 4, Weight: 1},
	})
	require.NoError(t, err)

	return g
}

// connectedRandom builds a seeded bounded-degree graph over a path backbone,
// so it is connected and may carry parallel edges.
func connectedRandom(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithMaxWeight(20)},
		builder.Path(), builder.BoundedDegree())
	require.NoError(t, err)

	return g
}

// boundedRandom builds a seeded bounded-degree graph with default caps;
// it is usually disconnected.
func boundedRandom(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.Create(n)
	require.NoError(t, err)
	require.NoError(t, builder.GenerateRandomEdges(g, builder.WithSeed(seed)))

	return g
}

// sumWeights adds up edge weights.
func sumWeights(edges []core.Edge) int64 {
	var s int64
	for _, e := range edges {
		s += e.Weight
	}
	return s
}
