package bfs

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// Components returns the connected components of g. Each component is listed
// in BFS order from its smallest node, and components are ordered by that
// smallest node. Isolated nodes form singleton components.
// Complexity: O(V + E), one shared visited set.
func Components(g core.Adjacency) ([][]int, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	n := g.NumNodes()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			nbrs, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, u, err)
			}
			for _, nb := range nbrs {
				if nb.To < 0 || nb.To >= n {
					return nil, fmt.Errorf("%w: neighbor %d of %d out of range", ErrNeighbors, nb.To, u)
				}
				if !seen[nb.To] {
					seen[nb.To] = true
					queue = append(queue, nb.To)
				}
			}
		}
		comp := make([]int, len(queue))
		copy(comp, queue)
		comps = append(comps, comp)
	}

	return comps, nil
}
