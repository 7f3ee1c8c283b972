// Package prim_kruskal defines configuration options, results and sentinel
// errors for minimum spanning tree computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// ErrNilGraph indicates that a nil adjacency was passed to an MST routine.
var ErrNilGraph = fmt.Errorf("%w: prim_kruskal: graph is nil", core.ErrInvalidArgument)

// ErrInvalidRoot indicates that the start node is outside [0, NumNodes).
var ErrInvalidRoot = fmt.Errorf("%w: prim_kruskal: invalid root node", core.ErrInvalidArgument)

// ErrUnknownMethod indicates that Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = fmt.Errorf("%w: prim_kruskal: unknown method", core.ErrInvalidArgument)

// errMalformed reports an adjacency entry pointing outside the node range.
var errMalformed = errors.New("prim_kruskal: neighbor out of range")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and, for Prim, the root.
//
// Fields:
//
//	Method string - MethodPrim (default) or MethodKruskal.
//	Root   int    - start node for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the start node for Prim.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Prim rooted at node 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// Result is the outcome of one Compute call.
//
// Edges are in the order the algorithm fixed them; for Prim, Edge.From is the
// endpoint already in the tree. Reached lists the tree nodes in fixation order,
// starting with Root (Prim only; nil for Kruskal).
type Result struct {
	Method      string
	Root        int
	Edges       []core.Edge
	TotalWeight int64
	Reached     []int
}

// Spanning reports whether the result spans all n nodes (len(Edges) == n-1).
func (r Result) Spanning(n int) bool {
	return n > 0 && len(r.Edges) == n-1
}

// Contains reports whether node is an endpoint of some result edge, or the
// Prim root. Complexity: O(len(Edges)).
func (r Result) Contains(node int) bool {
	if r.Method == MethodPrim && node == r.Root {
		return true
	}
	for _, e := range r.Edges {
		if e.From == node || e.To == node {
			return true
		}
	}

	return false
}

// Compute selects and runs the MST algorithm described by opts.
//
//	– MethodPrim:    Prim(g, Root); Reached is filled in fixation order.
//	– MethodKruskal: Kruskal(g); a minimum spanning forest over all components.
//	– Otherwise:     ErrUnknownMethod.
func Compute(g core.Adjacency, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch cfg.Method {
	case MethodPrim:
		edges, total, err := Prim(g, cfg.Root)
		if err != nil {
			return Result{}, fmt.Errorf("Compute: %w", err)
		}
		reached := make([]int, 0, len(edges)+1)
		reached = append(reached, cfg.Root)
		for _, e := range edges {
			reached = append(reached, e.To)
		}

		return Result{Method: MethodPrim, Root: cfg.Root, Edges: edges, TotalWeight: total, Reached: reached}, nil
	case MethodKruskal:
		edges, total, err := Kruskal(g)
		if err != nil {
			return Result{}, fmt.Errorf("Compute: %w", err)
		}

		return Result{Method: MethodKruskal, Root: cfg.Root, Edges: edges, TotalWeight: total}, nil
	default:
		return Result{}, fmt.Errorf("Compute: method %q: %w", cfg.Method, ErrUnknownMethod)
	}
}
