// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) over existing nodes.
//
// Contract:
//   - 0 <= p <= 1 (else ErrInvalidProbability), checked before mutation.
//   - One Bernoulli trial per unordered pair {i,j}, i<j, in i asc / j asc order.
//   - A weight is drawn only for accepted pairs.
//   - p=0 adds nothing; p=1 adds every pair.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// Determinism:
//   - Fixed RNG ⇒ identical edge set and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// RandomSparse returns a Constructor sampling each pair with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if g == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNilGraph)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		cfg.resolve()

		n := g.NumNodes()
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				// Float64 is in [0,1), so p=0 never accepts and p=1 always does.
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(i, j, cfg.drawWeight()); err != nil {
					return fmt.Errorf("%s: add %d-%d: %w", MethodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
