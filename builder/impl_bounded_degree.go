// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_bounded_degree.go - the bounded-degree random pass.
//
// Contract:
//   • Visits every pair (i,j), i<j, in lexicographic order, exactly once.
//   • Draws one secondary threshold t ∈ [lo,hi] per pair, then adds i-j iff
//     deg[i] < primaryCap && deg[j] < t. Weights are drawn only for added edges.
//   • Degrees are tracked locally, so pre-existing edges are ignored.
//   • Never retries and never repairs connectivity.
//
// Complexity:
//   • Time O(n²), Space O(n).
//
// Determinism:
//   • Fixed RNG ⇒ identical edge sequence and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// BoundedDegree returns a Constructor for the bounded-degree random pass.
func BoundedDegree() Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if g == nil {
			return fmt.Errorf("%s: %w", MethodBoundedDegree, ErrNilGraph)
		}
		if err := cfg.validate(MethodBoundedDegree); err != nil {
			return err
		}
		cfg.resolve()

		n := g.NumNodes()
		deg := make([]int, n)
		span := cfg.secondaryHi - cfg.secondaryLo + 1

		var i, j, t int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				t = cfg.secondaryLo + cfg.rng.Intn(span)
				if deg[i] >= cfg.primaryCap || deg[j] >= t {
					continue
				}
				if err := g.AddEdge(i, j, cfg.drawWeight()); err != nil {
					return fmt.Errorf("%s: add %d-%d: %w", MethodBoundedDegree, i, j, err)
				}
				deg[i]++
				deg[j]++
			}
		}

		return nil
	}
}
