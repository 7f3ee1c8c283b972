package converters

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/primgraph/core"
)

// TreeColor is the DOT color given to MST edges.
const TreeColor = "red"

// dotEdge is a weighted edge carrying DOT attributes. Its ReversedEdge keeps
// the attributes so gonum can hand it back in either direction.
type dotEdge struct {
	f, t  graph.Node
	w     int64
	order int // 1-based position in the MST sequence; 0 for non-tree edges
}

func (e dotEdge) From() graph.Node { return e.f }
func (e dotEdge) To() graph.Node   { return e.t }
func (e dotEdge) Weight() float64  { return float64(e.w) }

func (e dotEdge) ReversedEdge() graph.Edge {
	e.f, e.t = e.t, e.f
	return e
}

// Attributes implements encoding.Attributer.
func (e dotEdge) Attributes() []encoding.Attribute {
	w := encoding.Attribute{Key: "weight", Value: strconv.FormatInt(e.w, 10)}
	if e.order == 0 {
		return []encoding.Attribute{w}
	}

	return []encoding.Attribute{
		{Key: "color", Value: TreeColor},
		{Key: "order", Value: strconv.Itoa(e.order)},
		w,
	}
}

// MarshalDOT renders g as an undirected DOT graph named name. Edges in tree
// are colored TreeColor and numbered by their position in tree, so a renderer
// can replay the construction. Parallel edges collapse to the lightest copy;
// a tree edge always survives the collapse.
//
// Errors: ErrNilGraph; tree edges with no copy of the same weight in g;
// encoder failures.
func MarshalDOT(g core.Adjacency, tree []core.Edge, name string) ([]byte, error) {
	if core.IsNil(g) {
		return nil, fmt.Errorf("MarshalDOT: %w", ErrNilGraph)
	}
	n := g.NumNodes()
	dg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for u := 0; u < n; u++ {
		dg.AddNode(simple.Node(u))
	}

	// 1. Lightest copy of every pair; copies remembers every (u,v,w) present.
	copies := make(map[core.Edge]struct{})
	err := forEachEdge(g, func(u, v int, w int64) {
		copies[core.Edge{From: u, To: v, Weight: w}] = struct{}{}
		if old := dg.WeightedEdge(int64(u), int64(v)); old != nil && old.Weight() <= float64(w) {
			return
		}
		dg.SetWeightedEdge(dotEdge{f: simple.Node(u), t: simple.Node(v), w: w})
	})
	if err != nil {
		return nil, fmt.Errorf("MarshalDOT: %w", err)
	}

	// 2. Overlay the tree, keeping the weight Prim actually used.
	for k, e := range tree {
		c := e.Canonical()
		if _, ok := copies[c]; !ok {
			return nil, fmt.Errorf("MarshalDOT: tree edge #%d %v: %w", k, e, errNeighbor)
		}
		dg.SetWeightedEdge(dotEdge{f: simple.Node(c.From), t: simple.Node(c.To), w: c.Weight, order: k + 1})
	}

	// 3. Encode.
	out, err := dot.Marshal(dg, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("MarshalDOT: %w", err)
	}

	return out, nil
}
