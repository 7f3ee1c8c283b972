package converters_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/primgraph/converters"
	"github.com/katalvlaran/primgraph/core"
	"github.com/katalvlaran/primgraph/prim_kruskal"
)

// diamond builds 0-1(1), 0-2(4), 1-2(2), 1-3(3) plus a heavier 0-1 copy.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 3},
		{From: 1, To: 0, Weight: 9},
	})
	require.NoError(t, err)

	return g
}

// TestToGonum checks node ids, parallel-edge collapse and an MST oracle run.
func TestToGonum(t *testing.T) {
	g := diamond(t)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 4, gg.Nodes().Len())
	assert.Equal(t, 4, gg.Edges().Len())

	w, ok := gg.Weight(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
	_, ok = gg.Weight(2, 3)
	assert.False(t, ok)

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	assert.Equal(t, 6.0, path.Prim(dst, gg))

	_, err = converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

// TestMarshalDOT checks weights on every edge and order on tree edges.
func TestMarshalDOT(t *testing.T) {
	g := diamond(t)
	tree, _, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)

	out, err := converters.MarshalDOT(g, tree, "mst")
	require.NoError(t, err)
	s := string(out)

	assert.True(t, strings.HasPrefix(s, "strict graph mst {") || strings.HasPrefix(s, "graph mst {"), s)
	assert.Equal(t, len(tree), strings.Count(s, "color="+converters.TreeColor))
	for _, want := range []string{"order=1", "order=2", "order=3", "weight=4", "0 -- 2 [weight=4]"} {
		assert.Contains(t, s, want)
	}
	assert.NotContains(t, s, "weight=9")
	assert.NotContains(t, s, "order=4")
}

// TestMarshalDOT_Errors covers a nil graph and a tree edge absent from the graph.
func TestMarshalDOT_Errors(t *testing.T) {
	_, err := converters.MarshalDOT(nil, nil, "g")
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	var typed *core.Graph
	_, err = converters.MarshalDOT(typed, nil, "g")
	assert.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.ToGonum(typed)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	bad := []struct {
		name string
		tree []core.Edge
	}{
		{"pair absent", []core.Edge{{From: 2, To: 3, Weight: 1}}},
		{"lighter than every copy", []core.Edge{{From: 0, To: 1, Weight: 0}}},
		{"between the two copies", []core.Edge{{From: 1, To: 0, Weight: 5}}},
		{"node out of range", []core.Edge{{From: 3, To: 7, Weight: 1}}},
	}
	for _, tc := range bad {
		_, err = converters.MarshalDOT(diamond(t), tc.tree, "g")
		assert.Error(t, err, tc.name)
	}
}

// TestMarshalDOT_HeavierCopy keeps the weight of the copy the tree names.
func TestMarshalDOT_HeavierCopy(t *testing.T) {
	out, err := converters.MarshalDOT(diamond(t), []core.Edge{{From: 1, To: 0, Weight: 9}}, "g")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "weight=9")
	assert.Contains(t, s, "order=1")
	assert.NotContains(t, s, "weight=1]")
}

// TestSnapshot_RoundTrip writes and reads a snapshot and rebuilds the graph.
func TestSnapshot_RoundTrip(t *testing.T) {
	g := diamond(t)
	res, err := prim_kruskal.Compute(g)
	require.NoError(t, err)

	snap, err := converters.NewSnapshot(g, res)
	require.NoError(t, err)
	assert.True(t, snap.MST.Spanning)
	assert.Equal(t, int64(6), snap.MST.TotalWeight)
	assert.Equal(t, []int{3, 4, 2, 1}, snap.Degrees)

	var buf bytes.Buffer
	require.NoError(t, snap.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"totalWeight": 6`)
	assert.Contains(t, buf.String(), `"numNodes": 4`)

	back, err := converters.ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, snap, back)

	rebuilt, err := back.Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), rebuilt.Edges())

	_, err = converters.NewSnapshot(nil, res)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	_, err = converters.ReadSnapshot(strings.NewReader("{"))
	assert.Error(t, err)
}
