// Package core provides the undirected, integer-weighted Graph consumed by the
// builder, prim_kruskal, bfs and converters packages.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are the dense integer ids 0..n-1, fixed at NewGraph time.
//   - Every edge is undirected: AddEdge(u,v,w) stores (v,w) at u and (u,w) at v
//     under a single lock, so the mirror invariant can never be observed half-applied.
//   - Weights are strictly positive int64 values.
//   - Self-loops are rejected; parallel edges are accepted (a single
//     bounded-degree pass never produces them, stacked constructors may).
//   - Adjacency lists keep insertion order, which is what makes seeded generation
//     and the Prim edge sequence reproducible.
//
// Why use core.Graph?
//
//   - Slice-backed adjacency: O(1) node lookup, no hashing on the hot path of Prim.
//   - One sync.RWMutex guards the adjacency, so a built graph may be read from many
//     goroutines while construction stays single-writer.
//   - The Adjacency interface is the only thing algorithms depend on; any type that
//     reports NumNodes and Neighbors can be fed to the MST engine.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)          // O(n)
//	AddEdge(u, v int, w int64) error         // O(1) amortized
//	Neighbors(u int) ([]Neighbor, error)     // O(1), read-only view
//	HasEdge(u, v int) bool                   // O(min(deg u, deg v))
//	Degree(u int) (int, error)               // O(1)
//	Degrees() []int                          // O(V)
//	Edges() []Edge                           // O(E log E), canonical u<v
//	EdgeCount() int                          // O(1)
//	Clone() *Graph                           // O(V+E)
//
//	Validate(a Adjacency) error              // O(V+E log E) structural check
//	FromEdges(n int, edges []Edge) (*Graph, error)
//
// Errors:
//
//	ErrInvalidArgument  – root class of every argument error in this module
//	ErrNodeOutOfRange   – node id outside [0, NumNodes)
//	ErrSelfLoop         – u == v
//	ErrBadWeight        – weight <= 0
//	ErrTooFewNodes      – NewGraph(n) with n <= 0
//	ErrAsymmetric       – Validate found an entry without its mirror
//
// Every argument sentinel wraps ErrInvalidArgument, so
// errors.Is(err, core.ErrInvalidArgument) classifies them uniformly.
package core
