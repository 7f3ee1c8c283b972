// Package primgraph generates bounded-degree random weighted graphs and grows
// their minimum spanning trees with Prim's algorithm.
//
// What is primgraph?
//
//	A small in-memory library with these parts:
//		• Core primitives: an undirected adjacency over dense int ids, guarded by a R/W lock
//		• Builders: the bounded-degree random pass plus path/cycle/complete/G(n,p) fixtures
//		• MST: Prim (lazy-deletion min-heap) and Kruskal (union-find) as a cross-check
//		• Reachability: BFS, DFS and connected components
//		• Hand-off: gonum graphs, GraphViz DOT and JSON snapshots for renderers
//
// Under the hood, everything is organized under these subpackages:
//
//	core/         - Graph, Edge, Neighbor, the Adjacency contract and Validate
//	builder/      - Create, GenerateRandomEdges, BuildGraph and Constructors
//	prim_kruskal/ - Prim, Kruskal, Compute and Result
//	bfs/          - BFS with hooks, Components
//	dfs/          - DFS with pre/post-order hooks and forest traversal
//	converters/   - ToGonum, MarshalDOT, Snapshot
//	examples/     - a command-line driver over the whole pipeline
//
// Quick start:
//
//	g, _ := builder.Create(2000)
//	_ = builder.GenerateRandomEdges(g, builder.WithSeed(7))
//	edges, total, _ := prim_kruskal.Prim(g, 0)
//	fmt.Println(total, len(edges) == g.NumNodes()-1)
//
// Errors:
//
//	Every argument error wraps core.ErrInvalidArgument. A disconnected graph,
//	an under-saturated node or an equal-weight tie is never an error.
package primgraph
