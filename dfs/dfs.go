// Package dfs implements depth-first search (single-source and forest) on a
// core.Adjacency, with cancellation, pre- and post-order hooks, depth and
// neighbor limits, full-graph traversal, and diagnostics.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph core.Adjacency // underlying graph
	n     int            // node count, fixed for the walk
	opts  DFSOptions     // traversal options
	res   *DFSResult     // result collector
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components, starting each tree at the smallest unvisited id; otherwise it
// starts only from start. Edge weights are ignored except by FilterNeighbor.
// On cancellation and hook errors the partial result is returned with the error.
func DFS(g core.Adjacency, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&dopts)
		}
	}

	// 3. Single-source mode: verify start
	n := g.NumNodes()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: start=%d, n=%d: %w", start, n, ErrStartNotFound)
	}

	// 4. Initialize result
	res := &DFSResult{
		Start:   start,
		Order:   make([]int, 0, n),
		Depth:   filled(n, Unreached),
		Parent:  filled(n, Unreached),
		Visited: make([]bool, n),
	}
	walker := &dfsWalker{graph: g, n: n, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v, 0); err != nil {
				return res, err
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// filled returns a slice of n copies of v.
func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// traverse visits id at the given depth, recursing to unvisited neighbors.
func (w *dfsWalker) traverse(id, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Fetch neighbors once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("%w: Neighbors(%d): %v", ErrNeighbors, id, err)
	}

	// 5. Explore each neighbor
	for _, nb := range nbs {
		if nb.To < 0 || nb.To >= w.n {
			w.res.Order = nil

			return fmt.Errorf("%w: neighbor %d of %d out of range", ErrNeighbors, nb.To, id)
		}
		if nb.To == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nb.To, nb.Weight) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb.To] {
			continue
		}
		// depth limit: never record a parent for a node that is not entered
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb.To] = id
		if err = w.traverse(nb.To, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
