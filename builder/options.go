// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// options.go - functional options for builder configuration.
//
// Contract:
//   • Options only mutate builderConfig; they never touch a graph.
//   • nil functions and nil RNGs panic (programmer error).
//   • Numeric ranges are validated by the consuming constructor, so a bad
//     value surfaces as a returned error before any mutation.

package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithMaxWeight sets the inclusive weight ceiling for the default
// distribution [1,maxWeight]. Ignored when WithWeightFn is also given.
func WithMaxWeight(maxWeight int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.maxWeight = maxWeight
	}
}

// WithPrimaryCap sets the degree ceiling checked against the lower endpoint.
func WithPrimaryCap(limit int) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.primaryCap = limit
	}
}

// WithSecondaryCapRange sets the inclusive range [lo,hi] from which the
// per-pair threshold for the higher endpoint is drawn.
func WithSecondaryCapRange(lo, hi int) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.secondaryLo = lo
		cfg.secondaryHi = hi
	}
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. The builder is then not safe for
// concurrent use with other users of the same *rand.Rand. Panics on nil.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("WithRand: rng is nil")
	}

	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithWeightFn replaces the default [1,maxWeight] weight distribution.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("WithWeightFn: fn is nil")
	}

	return func(cfg *builderConfig) {
		cfg.weightFn = fn
	}
}
