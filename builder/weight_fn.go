// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// weight_fn.go - edge-weight distributions for builders.
//
// Contract:
//   • A WeightFn draws one weight from the supplied RNG; it must return > 0.
//   • Builders call it exactly once per inserted edge, after the edge is accepted.
//   • Factories panic on meaningless parameters (programmer error).

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from the builder's RNG.
type WeightFn func(rng *rand.Rand) int64

// UniformWeightFn returns a WeightFn drawing uniformly from [min,max], inclusive.
// Panics if min < 1 or max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < MinEdgeWeight || max < min {
		panic(fmt.Sprintf("UniformWeightFn: invalid range [%d,%d]", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		return min + rng.Int63n(span)
	}
}

// ConstantWeightFn returns a WeightFn that always yields w and never touches
// the RNG. Panics if w < 1.
func ConstantWeightFn(w int64) WeightFn {
	if w < MinEdgeWeight {
		panic(fmt.Sprintf("ConstantWeightFn: weight %d must be positive", w))
	}

	return func(_ *rand.Rand) int64 {
		return w
	}
}
