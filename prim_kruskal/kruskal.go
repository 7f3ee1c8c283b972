// Package prim_kruskal provides an implementation of Kruskal's minimum spanning forest algorithm.
// It is used as an independent cross-check of Prim's totals.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/primgraph/core"
)

// Kruskal computes a minimum spanning forest of g over all components.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph : g is nil or a nil *core.Graph.
//   - errors from g.Neighbors, and neighbor ids outside the node range.
//
// Steps:
//  1. Collect each undirected edge once (u < v side), parallel edges included.
//  2. Stable sort by (Weight, From, To).
//  3. Accept an edge iff its endpoints are in different sets; stop at n-1 edges.
//
// On a connected graph the result is a spanning tree with the same total
// weight as Prim's (cut property). Complexity: O(E log E + α(V)·E).
func Kruskal(g core.Adjacency) ([]core.Edge, int64, error) {
	if core.IsNil(g) {
		return nil, 0, fmt.Errorf("Kruskal: %w", ErrNilGraph)
	}
	n := g.NumNodes()

	// 1. Collect canonical edges.
	edges := make([]core.Edge, 0, n)
	for u := 0; u < n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, 0, fmt.Errorf("Kruskal: neighbors of %d: %w", u, err)
		}
		for _, nb := range nbrs {
			if nb.To < 0 || nb.To >= n {
				return nil, 0, fmt.Errorf("Kruskal: edge %d-%d, n=%d: %w", u, nb.To, n, errMalformed)
			}
			if u < nb.To {
				edges = append(edges, core.Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}

	// 2. Deterministic order.
	sort.SliceStable(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	// 3. Union-find.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	mst := make([]core.Edge, 0, n)
	var totalWeight int64
	for _, e := range edges {
		if n > 0 && len(mst) == n-1 {
			break
		}
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		mst = append(mst, e)
		totalWeight += e.Weight
	}

	return mst, totalWeight, nil
}
