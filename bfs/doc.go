// Package bfs provides breadth-first search over a core.Adjacency,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → distance (edges) from start, Unreached if never seen
//   - Parent: node → predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Components splits a graph into connected components.
//
// Why
//
//   - An MST grown from a root covers exactly the root's component; BFS and
//     Components tell callers up front how much of the graph that is.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, so the visit sequence is fully
//	reproducible for a given graph.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
