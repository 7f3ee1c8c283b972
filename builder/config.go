// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// config.go - builderConfig and its resolution.
//
// Contract:
//   • newBuilderConfig applies options over the package defaults.
//   • validate() reports ErrInvalidMaxWeight / ErrInvalidDegreeCap.
//   • resolve() fills the RNG and the weight function lazily, so that
//     WithMaxWeight and WithWeightFn may be given in any order.

package builder

import (
	"fmt"
	"math/rand"
	"time"
)

// builderConfig holds the knobs shared by all constructors.
type builderConfig struct {
	rng         *rand.Rand // nil until resolve(); time-seeded if never set
	weightFn    WeightFn   // nil means uniform over [MinEdgeWeight, maxWeight]
	maxWeight   int64
	primaryCap  int
	secondaryLo int
	secondaryHi int
}

// newBuilderConfig returns the defaults with opts applied in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxWeight:   DefaultMaxWeight,
		primaryCap:  DefaultPrimaryCap,
		secondaryLo: DefaultSecondaryCapMin,
		secondaryHi: DefaultSecondaryCapMax,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// validate checks numeric knobs without touching any graph.
func (cfg builderConfig) validate(method string) error {
	if cfg.weightFn == nil && cfg.maxWeight < MinEdgeWeight {
		return fmt.Errorf("%s: maxWeight=%d: %w", method, cfg.maxWeight, ErrInvalidMaxWeight)
	}
	if cfg.primaryCap < 0 {
		return fmt.Errorf("%s: primaryCap=%d: %w", method, cfg.primaryCap, ErrInvalidDegreeCap)
	}
	if cfg.secondaryLo < 0 || cfg.secondaryHi < cfg.secondaryLo {
		return fmt.Errorf("%s: secondary range [%d,%d]: %w",
			method, cfg.secondaryLo, cfg.secondaryHi, ErrInvalidDegreeCap)
	}

	return nil
}

// resolve installs a time-seeded RNG and the default weight distribution
// when none were configured.
func (cfg *builderConfig) resolve() {
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.weightFn == nil {
		cfg.weightFn = UniformWeightFn(MinEdgeWeight, cfg.maxWeight)
	}
}

// drawWeight draws one weight and clamps non-positive results from custom
// distributions to MinEdgeWeight so AddEdge never rejects them.
func (cfg *builderConfig) drawWeight() int64 {
	w := cfg.weightFn(cfg.rng)
	if w < MinEdgeWeight {
		return MinEdgeWeight
	}

	return w
}
