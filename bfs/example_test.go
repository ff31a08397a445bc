package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/bfs"
	"github.com/katalvlaran/lvlalg/core"
)

// ExampleBFS demonstrates level-order traversal of a small network.
// Vertex 1 goes first, then its neighbors in adjacency order, then the
// next frontier.
func ExampleBFS() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 1)
	g.AddEdge(2, 4)
	g.AddEdge(2, 5)
	g.AddEdge(3, 1)
	g.AddEdge(3, 6)
	g.AddEdge(4, 2)
	g.AddEdge(5, 2)
	g.AddEdge(6, 3)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [1 2 3 4 5 6]
}

// ExampleShortestPath finds the fewest-hop route between two vertices.
// Two routes lead from 1 to 6; BFS returns the shorter one over 3.
func ExampleShortestPath() {
	g := core.NewGraph()
	// Route 1: 1–2–4–6 (3 hops)
	g.AddEdge(1, 2)
	g.AddEdge(2, 4)
	g.AddEdge(4, 6)
	// Route 2: 1–3–6 (2 hops)
	g.AddEdge(1, 3)
	g.AddEdge(3, 6)

	path, found, err := bfs.ShortestPath(g, 1, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(found, path)
	// Output:
	// true [1 3 6]
}
