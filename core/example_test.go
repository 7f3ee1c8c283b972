package core_test

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// ExampleGraph demonstrates creation, insertion and the canonical edge listing.
func ExampleGraph() {
	// 1) Four isolated nodes 0..3.
	g, _ := core.NewGraph(4)

	// 2) Undirected edges; the mirror entry is stored automatically.
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 0, 4)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(1, 3, 3)

	// 3) Query.
	nbs, _ := g.Neighbors(1)
	fmt.Println("neighbors of 1:", nbs)
	fmt.Println("degrees:", g.Degrees())
	fmt.Println("edges:", g.Edges())

	// Output:
	// neighbors of 1: [{0 1} {2 2} {3 3}]
	// degrees: [2 3 2 1]
	// edges: [0-1(1) 0-2(4) 1-2(2) 1-3(3)]
}

// ExampleValidate shows a malformed edge being rejected before insertion.
func ExampleValidate() {
	g, _ := core.NewGraph(2)
	err := g.AddEdge(1, 1, 3)
	fmt.Println(err)
	fmt.Println(core.Validate(g))

	// Output:
	// AddEdge(1,1): core: invalid argument: self-loop not allowed
	// <nil>
}
