// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root node over any core.Adjacency using a min-heap with lazy deletion.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/primgraph/core"
	"github.com/rhartert/sparsesets"
)

// Prim computes the minimum spanning tree of the component containing start.
//
// Error Conditions:
//   - ErrNilGraph    : g is nil or a nil *core.Graph.
//   - ErrInvalidRoot : start is outside [0, g.NumNodes()).
//   - errors from g.Neighbors, and neighbor ids outside the node range.
//
// A disconnected graph is not an error: the tree of start's component is
// returned and callers needing full coverage compare len(edges) to n-1.
//
// Steps:
//  1. Validate g and start.
//  2. Mark start visited (sparse set over [0,n)); push its incident edges.
//  3. While the heap is non-empty and fewer than n nodes are visited:
//     a. Pop the minimum (weight, from, to) candidate.
//     b. If to is already visited, discard it (lazy deletion).
//     c. Otherwise fix it: mark to visited, append the edge, add its weight.
//     d. Push every edge from to towards an unvisited neighbor.
//  4. Return edges in fixation order and their total weight.
//
// Ties: candidates compare lexicographically by (Weight, From, To), so equal
// weights resolve to the smaller From, then the smaller To. Repeated calls on
// the same graph and root yield the identical edge sequence.
//
// The input is never mutated; the returned slice is freshly allocated.
// Complexity: O((V + E) log E) time, O(V + E) memory.
func Prim(g core.Adjacency, start int) ([]core.Edge, int64, error) {
	// 1. Validate inputs.
	if core.IsNil(g) {
		return nil, 0, fmt.Errorf("Prim: %w", ErrNilGraph)
	}
	n := g.NumNodes()
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("Prim: start=%d, n=%d: %w", start, n, ErrInvalidRoot)
	}

	// 2. Seed the tree with start.
	visited := sparsesets.New(n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64
	pq := &edgePQ{}

	_ = visited.Insert(start) // in range, checked above
	if err := pushFrontier(g, pq, visited, start, n); err != nil {
		return nil, 0, err
	}

	// 3. Main loop.
	for pq.Len() > 0 && visited.Size() < n {
		e := heap.Pop(pq).(core.Edge)
		if visited.Contains(e.To) {
			continue
		}
		_ = visited.Insert(e.To) // pushFrontier range-checked e.To
		mst = append(mst, e)
		totalWeight += e.Weight

		if err := pushFrontier(g, pq, visited, e.To, n); err != nil {
			return nil, 0, err
		}
	}

	return mst, totalWeight, nil
}

// pushFrontier pushes every edge from u to an unvisited neighbor.
func pushFrontier(g core.Adjacency, pq *edgePQ, visited *sparsesets.Set, u, n int) error {
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("Prim: neighbors of %d: %w", u, err)
	}
	for _, nb := range nbrs {
		if nb.To < 0 || nb.To >= n {
			return fmt.Errorf("Prim: edge %d-%d, n=%d: %w", u, nb.To, n, errMalformed)
		}
		if !visited.Contains(nb.To) {
			heap.Push(pq, core.Edge{From: u, To: nb.To, Weight: nb.Weight})
		}
	}

	return nil
}

// edgePQ implements heap.Interface for a min-heap of candidate edges.
type edgePQ []core.Edge

// Len returns the number of queued candidates.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by Weight, then From, then To.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
