package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/primgraph/core"
)

// ErrNilGraph indicates a nil adjacency was passed to a converter.
var ErrNilGraph = fmt.Errorf("%w: converters: graph is nil", core.ErrInvalidArgument)

// errNeighbor reports an adjacency entry pointing outside the node range.
var errNeighbor = errors.New("converters: neighbor out of range")

// ToGonum copies g into a gonum weighted undirected graph with node ids
// 0..n-1. Parallel edges keep the minimum weight; absent edges weigh +Inf.
// Complexity: O(V + E).
func ToGonum(g core.Adjacency) (*simple.WeightedUndirectedGraph, error) {
	if core.IsNil(g) {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilGraph)
	}
	n := g.NumNodes()
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for u := 0; u < n; u++ {
		out.AddNode(simple.Node(u))
	}

	err := forEachEdge(g, func(u, v int, w int64) {
		if old := out.WeightedEdge(int64(u), int64(v)); old != nil && old.Weight() <= float64(w) {
			return
		}
		out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: float64(w)})
	})
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	return out, nil
}

// forEachEdge calls fn once per undirected edge copy with u < v.
func forEachEdge(g core.Adjacency, fn func(u, v int, w int64)) error {
	n := g.NumNodes()
	for u := 0; u < n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			if nb.To < 0 || nb.To >= n {
				return fmt.Errorf("edge %d-%d, n=%d: %w", u, nb.To, n, errNeighbor)
			}
			if u < nb.To {
				fn(u, nb.To, nb.Weight)
			}
		}
	}

	return nil
}
