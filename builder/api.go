// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// api.go - public entry points: Create, GenerateRandomEdges, BuildGraph.
//
// Contract:
//   • Create(n) returns n isolated nodes or a core.ErrTooFewNodes-wrapped error.
//   • Arguments and options are validated before the first mutation.
//   • Errors are wrapped with the entry-point name for context.
//   • The RNG is resolved once per call and shared by every constructor, so a
//     seeded BuildGraph is reproducible end to end.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// Constructor mutates g using the resolved configuration.
// Implementations validate their own preconditions before mutating and wrap
// errors with their method name.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// Create returns a graph of numNodes isolated nodes.
// Complexity: O(n).
func Create(numNodes int) (*core.Graph, error) {
	g, err := core.NewGraph(numNodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCreate, err)
	}

	return g, nil
}

// GenerateRandomEdges runs the bounded-degree pass over g, which is expected
// to hold isolated nodes (existing edges are kept but do not count toward the
// degree caps).
//
// Errors: ErrNilGraph, ErrInvalidMaxWeight, ErrInvalidDegreeCap, reported
// before any edge is added.
// Complexity: O(n²) time, O(n) extra space.
func GenerateRandomEdges(g *core.Graph, opts ...BuilderOption) error {
	if g == nil {
		return fmt.Errorf("GenerateRandomEdges: %w", ErrNilGraph)
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodBoundedDegree); err != nil {
		return fmt.Errorf("GenerateRandomEdges: %w", err)
	}
	cfg.resolve()

	if err := BoundedDegree()(g, &cfg); err != nil {
		return fmt.Errorf("GenerateRandomEdges: %w", err)
	}

	return nil
}

// BuildGraph creates n nodes and applies each Constructor in order.
//
// Steps:
//  1. Create the graph (core.ErrTooFewNodes on n <= 0).
//  2. Apply options, validate, resolve the RNG and weight function.
//  3. Run each constructor; stop at the first error.
func BuildGraph(n int, opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := Create(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(opts...)
	if err = cfg.validate("BuildGraph"); err != nil {
		return nil, err
	}
	cfg.resolve()

	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err = c(g, &cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
