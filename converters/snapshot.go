package converters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/primgraph/core"
	"github.com/katalvlaran/primgraph/prim_kruskal"
)

// Snapshot is the JSON document handed to renderers.
type Snapshot struct {
	NumNodes int         `json:"numNodes"`
	Edges    []core.Edge `json:"edges"`
	Degrees  []int       `json:"degrees"`
	MST      MSTView     `json:"mst"`
}

// MSTView is the MST part of a Snapshot; Edges keep construction order.
type MSTView struct {
	Method      string      `json:"method"`
	Root        int         `json:"root"`
	TotalWeight int64       `json:"totalWeight"`
	Spanning    bool        `json:"spanning"`
	Edges       []core.Edge `json:"edges"`
}

// NewSnapshot captures g and res. Edges are canonical and sorted.
func NewSnapshot(g *core.Graph, res prim_kruskal.Result) (Snapshot, error) {
	if g == nil {
		return Snapshot{}, fmt.Errorf("NewSnapshot: %w", ErrNilGraph)
	}
	tree := make([]core.Edge, len(res.Edges))
	copy(tree, res.Edges)

	return Snapshot{
		NumNodes: g.NumNodes(),
		Edges:    g.Edges(),
		Degrees:  g.Degrees(),
		MST: MSTView{
			Method:      res.Method,
			Root:        res.Root,
			TotalWeight: res.TotalWeight,
			Spanning:    res.Spanning(g.NumNodes()),
			Edges:       tree,
		},
	}, nil
}

// WriteJSON encodes s to w, indented.
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("Snapshot.WriteJSON: %w", err)
	}

	return nil
}

// ReadSnapshot decodes a Snapshot written by WriteJSON.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("ReadSnapshot: %w", err)
	}

	return s, nil
}

// Graph rebuilds the captured graph, validating every edge.
func (s Snapshot) Graph() (*core.Graph, error) {
	g, err := core.FromEdges(s.NumNodes, s.Edges)
	if err != nil {
		return nil, fmt.Errorf("Snapshot.Graph: %w", err)
	}

	return g, nil
}
