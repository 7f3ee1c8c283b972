// Package converters hands graphs and MST results to collaborators outside
// primgraph:
//
//   - gonum/graph: ToGonum returns a *simple.WeightedUndirectedGraph, so gonum's
//     path, topo and encoding packages can run over a generated graph.
//   - GraphViz: MarshalDOT renders the graph with the MST overlaid; each tree
//     edge carries its position in the construction sequence.
//   - JSON: Snapshot bundles the graph, degrees and MST result for renderers
//     that replay the tree growth edge by edge.
//
// Parallel edges collapse to their lightest copy in the gonum and DOT views;
// Snapshot keeps every copy.
package converters
