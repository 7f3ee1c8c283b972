// File: methods.go
// Role: Graph lifecycle and queries: AddEdge, Neighbors, HasEdge, Degree(s),
//       Edges, EdgeCount, Clone, FromEdges.
// Determinism:
//   - Neighbors() preserves insertion order.
//   - Edges() returns canonical edges sorted by (From, To, Weight).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// NumNodes returns the number of nodes; 0 on a nil *Graph. Complexity: O(1).
func (g *Graph) NumNodes() int {
	if g == nil {
		return 0
	}

	return g.numNodes
}

// inRange reports whether u is a valid node id.
func (g *Graph) inRange(u int) bool {
	return u >= 0 && u < g.NumNodes()
}

// AddEdge inserts the undirected edge u-v with weight w.
//
// Steps:
//  1. Validate ids (ErrNodeOutOfRange), endpoints (ErrSelfLoop), weight (ErrBadWeight).
//  2. Under the write lock append (v,w) to adj[u] and (u,w) to adj[v].
//
// Parallel edges are accepted. Nothing is mutated on error.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, g.NumNodes(), ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if w <= 0 {
		return fmt.Errorf("AddEdge(%d,%d): w=%d: %w", u, v, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})
	g.edgeCount++

	return nil
}

// Neighbors returns the adjacency list of u in insertion order.
//
// The returned slice aliases internal storage: treat it as read-only and do not
// retain it across AddEdge calls.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if !g.inRange(u) {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", u, g.NumNodes(), ErrNodeOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[u], nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(min(deg u, deg v)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	// scan the shorter list
	from, to := u, v
	if len(g.adj[v]) < len(g.adj[u]) {
		from, to = v, u
	}
	for _, nb := range g.adj[from] {
		if nb.To == to {
			return true
		}
	}

	return false
}

// Degree returns the number of edges incident to u.
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if !g.inRange(u) {
		return 0, fmt.Errorf("Degree(%d): n=%d: %w", u, g.NumNodes(), ErrNodeOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}

// Degrees returns the degree of every node, indexed by node id.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.numNodes)
	for u, list := range g.adj {
		out[u] = len(list)
	}

	return out
}

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every undirected edge exactly once, in canonical From<To form,
// sorted by (From, To, Weight).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, list := range g.adj {
		for _, nb := range list {
			// each undirected edge is stored twice; keep the u<v copy
			if u < nb.To {
				out = append(out, Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}
	SortEdges(out)

	return out
}

// Clone returns a deep copy of g. The source is not mutated.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		numNodes:  g.numNodes,
		edgeCount: g.edgeCount,
		adj:       make([][]Neighbor, g.numNodes),
	}
	for u, list := range g.adj {
		if len(list) > 0 {
			c.adj[u] = append([]Neighbor(nil), list...)
		}
	}

	return c
}

// FromEdges builds an n-node graph and inserts edges in the given order.
// The first AddEdge failure is returned with its index.
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("FromEdges: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// SortEdges orders edges by (From, To, Weight) in place.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}

		return a.Weight < b.Weight
	})
}
