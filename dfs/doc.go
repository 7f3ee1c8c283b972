// Package dfs implements depth-first search over a core.Adjacency.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking,
//     from a single start node or, with WithFullTraversal, from every
//     unvisited node in id order (a forest). Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting (MaxDepth)
//   - Neighbor filtering with a SkippedNeighbors diagnostic
//   - DFSResult collects post-order, Depth, Parent and Visited, all indexed by
//     node id; Unreached marks nodes the search never saw.
//
// Why:
//
//   - A second, independent reachability walk next to bfs: the node set
//     Prim fixes from a root must equal the set DFS reaches from it.
//
// Determinism:
//
//	Neighbors are explored in adjacency order, so Order, Depth and Parent are
//	reproducible for a given graph.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) for the recursion stack and result slices.
//
// Errors:
//
//   - ErrGraphNil       graph is nil (or a nil *core.Graph)
//   - ErrStartNotFound  start outside [0, NumNodes) in single-source mode
//   - ErrNeighbors      adjacency lookup failed or pointed out of range
//   - context.Canceled  DFS canceled via context
//   - hook errors       propagated from OnVisit or OnExit
package dfs
