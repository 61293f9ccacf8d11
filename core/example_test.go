package core_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph over vertices 0..2.
	g := core.NewGraph(3)

	// 2) Add a triangle.
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 0, 4)

	// 3) Neighbors are oriented out of the queried vertex.
	nbs, _ := g.Neighbors(0)
	for _, e := range nbs {
		fmt.Printf("%d→%d (%.0f)\n", e.From, e.To, e.Weight)
	}

	// 4) Out-of-range endpoints are rejected.
	fmt.Println(g.AddEdge(0, 3, 1))

	// Output:
	// 0→1 (1)
	// 0→2 (4)
	// core: vertex out of range: edge 0→3 with 3 vertices
}

// ExampleNewFromEdges builds a directed graph in one call.
func ExampleNewFromEdges() {
	g, err := core.NewFromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	}, core.WithDirected(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	in, _ := g.Neighbors(2)
	fmt.Println(g.VertexCount(), g.EdgeCount(), len(in))
	// Output: 3 2 0
}
