// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/primgraph/core"
	"github.com/stretchr/testify/require"
)

// Common node ids used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
)

// Concurrency sizes.
const (
	NReaders = 50
	NLoops   = 100
)

// mustGraph builds an n-node graph from edges or fails the test.
func mustGraph(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

// diamond is the four-node graph 0-1(1), 0-2(4), 1-2(2), 1-3(3).
func diamond(t *testing.T) *core.Graph {
	t.Helper()

	return mustGraph(t, 4,
		core.Edge{From: Node0, To: Node1, Weight: Weight1},
		core.Edge{From: Node0, To: Node2, Weight: Weight4},
		core.Edge{From: Node1, To: Node2, Weight: Weight2},
		core.Edge{From: Node1, To: Node3, Weight: Weight3},
	)
}

// rawAdjacency is a hand-written Adjacency used to feed malformed inputs to Validate.
type rawAdjacency [][]core.Neighbor

func (r rawAdjacency) NumNodes() int { return len(r) }

func (r rawAdjacency) Neighbors(u int) ([]core.Neighbor, error) {
	if u < 0 || u >= len(r) {
		return nil, core.ErrNodeOutOfRange
	}

	return r[u], nil
}
