// Package core defines the central Graph, Neighbor and Edge types, the
// Adjacency contract consumed by algorithms, and the sentinel errors shared by
// every package of the module.
//
// Errors:
//
//	ErrInvalidArgument - root class of all argument errors.
//	ErrNodeOutOfRange  - node id outside [0, NumNodes).
//	ErrSelfLoop        - edge endpoints are equal.
//	ErrBadWeight       - non-positive edge weight.
//	ErrTooFewNodes     - graph size is not positive.
//	ErrAsymmetric      - an adjacency entry has no mirror.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// ErrInvalidArgument is the root of every argument error in this module.
// Callers branch with errors.Is(err, core.ErrInvalidArgument).
var ErrInvalidArgument = errors.New("core: invalid argument")

// Sentinel errors for core graph operations. Each wraps ErrInvalidArgument.
var (
	// ErrNodeOutOfRange indicates an operation referenced a node id outside [0, NumNodes).
	ErrNodeOutOfRange = fmt.Errorf("%w: node out of range", ErrInvalidArgument)

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = fmt.Errorf("%w: self-loop not allowed", ErrInvalidArgument)

	// ErrBadWeight indicates a weight that is not a positive integer.
	ErrBadWeight = fmt.Errorf("%w: weight must be positive", ErrInvalidArgument)

	// ErrTooFewNodes indicates a graph size that is not positive.
	ErrTooFewNodes = fmt.Errorf("%w: node count must be positive", ErrInvalidArgument)

	// ErrAsymmetric indicates an adjacency entry (u→v,w) without its mirror (v→u,w).
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")
)

// Neighbor is one entry of a node's adjacency list: the node at the other end
// of an undirected edge and the edge weight.
type Neighbor struct {
	// To is the neighbor node id.
	To int `json:"to"`

	// Weight is the positive edge weight.
	Weight int64 `json:"weight"`
}

// Edge is a weighted undirected edge.
//
// Algorithms report edges in the orientation they discovered them (Prim puts
// the tree side in From). Use Canonical for the From<To form when edges must be
// deduplicated regardless of traversal direction.
type Edge struct {
	// From is one endpoint; for MST results, the endpoint already in the tree.
	From int `json:"from"`

	// To is the other endpoint; for MST results, the node the edge attached.
	To int `json:"to"`

	// Weight is the positive edge weight.
	Weight int64 `json:"weight"`
}

// Canonical returns e with From < To.
func (e Edge) Canonical() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From, Weight: e.Weight}
	}

	return e
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return strconv.Itoa(e.From) + "-" + strconv.Itoa(e.To) + "(" + strconv.FormatInt(e.Weight, 10) + ")"
}

// Adjacency is the read-only graph contract consumed by algorithms.
//
// Implementations must describe an undirected graph: for every entry (v,w)
// returned by Neighbors(u) there is an entry (u,w) in Neighbors(v). Returned
// slices are treated as read-only.
type Adjacency interface {
	// NumNodes returns the number of nodes; ids are 0..NumNodes()-1.
	NumNodes() int

	// Neighbors returns the adjacency list of u, or ErrNodeOutOfRange.
	Neighbors(u int) ([]Neighbor, error)
}

// IsNil reports whether a is nil or wraps a nil *Graph. Algorithms call it
// instead of a == nil, which misses the typed nil.
func IsNil(a Adjacency) bool {
	if a == nil {
		return true
	}
	g, ok := a.(*Graph)

	return ok && g == nil
}

// Graph is the in-memory undirected weighted graph.
//
// mu guards adj and edgeCount; numNodes is fixed at construction.
type Graph struct {
	mu sync.RWMutex

	numNodes  int
	edgeCount int

	// adj[u] lists (v,w) for every edge u-v in insertion order.
	adj [][]Neighbor
}

// NewGraph creates a graph with n isolated nodes 0..n-1.
// Returns ErrTooFewNodes if n <= 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrTooFewNodes)
	}

	return &Graph{
		numNodes: n,
		adj:      make([][]Neighbor, n),
	}, nil
}

// compile-time contract check.
var _ Adjacency = (*Graph)(nil)
