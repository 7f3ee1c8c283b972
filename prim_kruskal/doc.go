// Package prim_kruskal computes minimum spanning trees over any core.Adjacency.
//
// What & Why
//
//   - An MST of a connected, weighted, undirected graph G = (V, E) is a subset
//     T ⊆ E that connects every node with the smallest possible total weight.
//   - On a disconnected graph, growing from one root yields the MST of that
//     root's component only; that is a normal outcome, not an error.
//
// Algorithms Provided
//
//   - Prim(g, start) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from start. Candidate edges (weight, from, to)
//     wait in a binary min-heap; a popped edge whose far end is already in the
//     tree is discarded (lazy deletion, no decrease-key).
//
//   - Termination: the heap is empty or every node is in the tree.
//
//   - Order: Edges are returned in the order they were fixed; consumers that
//     replay construction must keep that order.
//
//   - Ties: lexicographic on (weight, from, to); repeated calls are identical.
//
//   - Complexity: O((V + E) log E) time; each edge is pushed at most once per
//     endpoint.
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//
//   - Strategy: stable sort of all edges, union-find merge. Produces a minimum
//     spanning forest of the whole graph.
//
//   - Use: independent cross-check; on a connected graph its total equals
//     Prim's for every root.
//
//   - Compute(g, opts...) (Result, error)
//
//   - Dispatches on WithMethod (default MethodPrim) and WithRoot (default 0).
//
// Errors
//
//   - ErrNilGraph, ErrInvalidRoot, ErrUnknownMethod; each satisfies
//     errors.Is(err, core.ErrInvalidArgument).
//
// Example
//
//	g, _ := core.FromEdges(4, []core.Edge{{0, 1, 1}, {0, 2, 4}, {1, 2, 2}, {1, 3, 3}})
//	edges, total, _ := prim_kruskal.Prim(g, 0)
//	// total == 6, edges == [0-1(1) 1-2(2) 1-3(3)]
package prim_kruskal
