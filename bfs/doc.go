// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - ShortestPath reconstructs a fewest-hop path between two vertices;
//     an unreachable goal is reported as found=false, not as an error.
//   - Supports functional hooks (OnEnqueue, OnDequeue, OnVisit), neighbor
//     filtering, a MaxDepth limit, and context cancellation.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover the subgraph reachable from a vertex, level by level.
//   - BFS explores in non-decreasing distance order, so the first time the
//     goal is dequeued its parent chain is a shortest path — the guarantee
//     ShortestPath relies on.
//
// Determinism
//
//	core.NeighborIDs preserves adjacency insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	g := core.NewGraph()
//	g.AddEdge(1, 2)
//	g.AddEdge(1, 3)
//	g.AddEdge(3, 6)
//
//	res, err := bfs.BFS(g, 1)
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// a context error, or an OnVisit hook error
//	}
//	fmt.Println(res.Order) // [1 2 3 6]
//
//	path, found, err := bfs.ShortestPath(g, 1, 6)
//	// path == [1 3 6], found == true
package bfs
