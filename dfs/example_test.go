package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dfs"
)

// ExampleDFS walks a small branching graph depth-first: the first branch
// is explored to exhaustion before the second one starts.
func ExampleDFS() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(2, 5)
	g.AddEdge(3, 6)

	res, err := dfs.DFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [1 2 4 5 3 6]
}

// ExampleHasCycle contrasts a ring with a chain.
func ExampleHasCycle() {
	ring := core.NewGraph(core.WithDirected(true))
	ring.AddEdge(1, 2)
	ring.AddEdge(2, 3)
	ring.AddEdge(3, 1)

	chain := core.NewGraph(core.WithDirected(true))
	chain.AddEdge(1, 2)
	chain.AddEdge(2, 3)

	fmt.Println(dfs.HasCycle(ring), dfs.HasCycle(chain))
	// Output:
	// true false
}

// ExampleTopologicalSort linearizes a tiny build-dependency DAG.
func ExampleTopologicalSort() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(1, 2) // 1 must precede 2
	g.AddEdge(2, 3) // 2 must precede 3
	g.AddEdge(1, 3) // 1 must precede 3
	g.AddEdge(3, 4) // 3 must precede 4

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [1 2 3 4]
}
