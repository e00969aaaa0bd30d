package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with four vertices 0..3:
	g, _ := core.NewGraph(4)

	// 2) Add directed, weighted edges:
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 2)
	g.AddEdge(1, 3, -4)

	// 3) Inspect edges leaving vertex 0:
	out, _ := g.OutEdges(0)
	for _, e := range out {
		fmt.Printf("e%d: %d→%d (%d)\n", e.ID, e.From, e.To, e.Weight)
	}

	// 4) Indices outside [0,4) are rejected:
	_, err := g.AddEdge(0, 4, 1)
	fmt.Println(errors.Is(err, core.ErrVertexOutOfRange))

	// Output:
	// e0: 0→1 (1)
	// e1: 0→2 (2)
	// true
}

// ExampleGraph_Stats shows the edge classification summary.
func ExampleGraph_Stats() {
	g, _ := core.NewGraph(3)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, -1)
	g.AddEdge(2, 2, 0)

	st := g.Stats()
	fmt.Println(st.VertexCount, st.EdgeCount, st.SelfLoops, st.NegativeWeight, st.PositiveWeight)

	// Output:
	// 3 3 1 1 1
}
