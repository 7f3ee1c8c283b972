package core_test

import (
	"testing"

	"github.com/katalvlaran/primgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGraph_EmptyAdjacency verifies that every node starts isolated.
func TestNewGraph_EmptyAdjacency(t *testing.T) {
	for _, n := range []int{1, 2, 17, 1000} {
		g, err := core.NewGraph(n)
		require.NoError(t, err)
		assert.Equal(t, n, g.NumNodes())
		assert.Zero(t, g.EdgeCount())
		for u := 0; u < n; u++ {
			nbs, err := g.Neighbors(u)
			require.NoError(t, err)
			assert.Empty(t, nbs, "node %d must start with an empty list", u)
		}
	}
}

// TestNewGraph_InvalidSize verifies ErrTooFewNodes for n <= 0.
func TestNewGraph_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		g, err := core.NewGraph(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrTooFewNodes)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
	}
}

// TestAddEdge_Mirrors verifies the undirected invariant on insertion.
func TestAddEdge_Mirrors(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(Node0, Node2, Weight3))

	from0, err := g.Neighbors(Node0)
	require.NoError(t, err)
	from2, err := g.Neighbors(Node2)
	require.NoError(t, err)

	assert.Equal(t, []core.Neighbor{{To: Node2, Weight: Weight3}}, from0)
	assert.Equal(t, []core.Neighbor{{To: Node0, Weight: Weight3}}, from2)
	assert.True(t, g.HasEdge(Node0, Node2))
	assert.True(t, g.HasEdge(Node2, Node0))
	assert.False(t, g.HasEdge(Node0, Node1))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_Errors verifies argument validation and that nothing is mutated on failure.
func TestAddEdge_Errors(t *testing.T) {
	g := mustGraph(t, 3)

	tests := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"negative u", -1, 1, Weight1, core.ErrNodeOutOfRange},
		{"v too large", 0, 3, Weight1, core.ErrNodeOutOfRange},
		{"self loop", 1, 1, Weight1, core.ErrSelfLoop},
		{"zero weight", 0, 1, 0, core.ErrBadWeight},
		{"negative weight", 0, 1, -5, core.ErrBadWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v, tc.w)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, []int{0, 0, 0}, g.Degrees())
}

// TestAddEdge_Parallel verifies parallel edges are kept as separate entries.
func TestAddEdge_Parallel(t *testing.T) {
	g := mustGraph(t, 2,
		core.Edge{From: Node0, To: Node1, Weight: 5},
		core.Edge{From: Node1, To: Node0, Weight: Weight1},
	)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{2, 2}, g.Degrees())
	assert.Equal(t, []core.Edge{
		{From: Node0, To: Node1, Weight: Weight1},
		{From: Node0, To: Node1, Weight: 5},
	}, g.Edges())
}

// TestNeighbors_InsertionOrder verifies adjacency preserves insertion order.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := diamond(t)
	nbs, err := g.Neighbors(Node1)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{To: Node0, Weight: Weight1},
		{To: Node2, Weight: Weight2},
		{To: Node3, Weight: Weight3},
	}, nbs)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

// TestDegrees covers Degree, Degrees and the histogram helper.
func TestDegrees(t *testing.T) {
	g := diamond(t)
	assert.Equal(t, []int{2, 3, 2, 1}, g.Degrees())

	d, err := g.Degree(Node1)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	h, err := core.DegreeHistogram(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 1}, h)
}

// TestEdges_Canonical verifies Edges returns each edge once, From<To, sorted.
func TestEdges_Canonical(t *testing.T) {
	g := mustGraph(t, 4,
		core.Edge{From: Node3, To: Node1, Weight: Weight3},
		core.Edge{From: Node2, To: Node0, Weight: Weight4},
		core.Edge{From: Node1, To: Node0, Weight: Weight1},
	)
	assert.Equal(t, []core.Edge{
		{From: Node0, To: Node1, Weight: Weight1},
		{From: Node0, To: Node2, Weight: Weight4},
		{From: Node1, To: Node3, Weight: Weight3},
	}, g.Edges())
}

// TestClone_Independent verifies a clone does not share adjacency storage.
func TestClone_Independent(t *testing.T) {
	g := diamond(t)
	c := g.Clone()
	require.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.AddEdge(Node2, Node3, 9))
	assert.False(t, g.HasEdge(Node2, Node3))
	assert.True(t, c.HasEdge(Node2, Node3))
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 5, c.EdgeCount())
}

// TestFromEdges_ReportsIndex verifies the failing edge index is wrapped.
func TestFromEdges_ReportsIndex(t *testing.T) {
	_, err := core.FromEdges(2, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 1, Weight: 1}})
	require.ErrorIs(t, err, core.ErrSelfLoop)
	assert.Contains(t, err.Error(), "edge #1")

	_, err = core.FromEdges(0, nil)
	assert.ErrorIs(t, err, core.ErrTooFewNodes)
}

// TestEdge_CanonicalAndString covers the Edge value helpers.
func TestEdge_CanonicalAndString(t *testing.T) {
	e := core.Edge{From: 7, To: 2, Weight: 9}
	assert.Equal(t, core.Edge{From: 2, To: 7, Weight: 9}, e.Canonical())
	assert.Equal(t, e.Canonical(), e.Canonical().Canonical())
	assert.Equal(t, "7-2(9)", e.String())
}

// TestNilGraph_Queries checks that a nil *Graph reads as an empty graph and
// that IsNil sees through the Adjacency interface.
func TestNilGraph_Queries(t *testing.T) {
	var g *core.Graph
	assert.Equal(t, 0, g.NumNodes())
	_, err := g.Neighbors(0)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = g.Degree(0)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	assert.False(t, g.HasEdge(0, 1))

	assert.True(t, core.IsNil(nil))
	assert.True(t, core.IsNil(g))
	assert.False(t, core.IsNil(mustGraph(t, 1)))
	assert.False(t, core.IsNil(rawAdjacency{}))

	assert.ErrorIs(t, core.Validate(g), core.ErrInvalidArgument)
	_, err = core.DegreeHistogram(g)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
