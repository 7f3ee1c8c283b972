// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = fmt.Errorf("%w: dfs: graph is nil", core.ErrInvalidArgument)

	// ErrStartNotFound indicates that the start id is outside [0, NumNodes).
	ErrStartNotFound = fmt.Errorf("%w: dfs: start node not found", core.ErrInvalidArgument)

	// ErrNeighbors is returned when fetching neighbors fails or yields an
	// id outside the node range.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Unreached marks Depth and Parent entries of nodes the search never saw,
// and the Parent of every tree root.
const Unreached = -1

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have been
	// explored (post-order), before the node is appended to Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits discovery to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr-neighbor with
	// its weight. Return false to skip it.
	FilterNeighbor func(curr, neighbor int, weight int64) bool

	// FullTraversal, if true, restarts DFS from every unvisited node,
	// covering disconnected components. Default is false.
	FullTraversal bool

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; a negative limit
// disables the check.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges.
// If fn returns false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(curr, neighbor int, weight int64) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// The start argument of DFS is then ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// Depth, Parent and Visited are indexed by node id.
type DFSResult struct {
	// Start is the start node of a single-source traversal.
	Start int

	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth is the tree depth at discovery; Unreached if never seen.
	Depth []int

	// Parent is the node each node was discovered from; Unreached for roots
	// and unseen nodes.
	Parent []int

	// Visited flags which nodes were reached.
	Visited []bool

	// SkippedNeighbors reports how many edges FilterNeighbor rejected,
	// aggregated across all trees.
	SkippedNeighbors int
}

// Reached reports whether id was discovered by the search.
func (r *DFSResult) Reached(id int) bool {
	return id >= 0 && id < len(r.Visited) && r.Visited[id]
}

// Count returns the number of discovered nodes.
func (r *DFSResult) Count() int {
	c := 0
	for _, v := range r.Visited {
		if v {
			c++
		}
	}

	return c
}
