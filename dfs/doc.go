// Package dfs implements depth-first traversal, cycle detection, and
// topological sorting on a core.Graph — all on explicit stacks, so
// traversal depth is bounded by memory rather than call-stack size.
//
// What
//
//   - DFS(g, start, opts...): iterative depth-first traversal from a root,
//     or a full forest with WithFullTraversal. Neighbors are pushed onto
//     the stack in reverse adjacency order, so pop order matches the
//     left-to-right order a naive recursive DFS would produce.
//   - DetectCycle(g, opts...): white/gray/black color marking across all
//     vertices (disconnected graphs included). A back-edge to a vertex on
//     the active path signals a cycle. HasCycle is the boolean shortcut.
//   - TopologicalSort(g, opts...): reverse post-order of a directed graph;
//     returns ErrCycleDetected when no linear order exists.
//
// Why
//
//   - Explore a branch to exhaustion before backtracking, in O(V + E).
//   - Decide whether dependency-style edges can be linearized.
//
// Edge-direction convention
//
//	Adjacency is treated as directed: every stored neighbor is followed.
//	An undirected graph built via symmetric insertion therefore reports
//	each of its edges as a 2-cycle — build a directed model if that is
//	not what you want.
//
// Determinism
//
//	Single-source traversal follows adjacency insertion order; full-graph
//	operations (forest DFS, DetectCycle, TopologicalSort) iterate roots in
//	ascending vertex order via core.Vertices.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the explicit stack, seen-set, and color map
//
// Usage
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//
//	res, err := dfs.DFS(g, 1)        // res.Order == [1 2 3]
//	ok := dfs.HasCycle(g)            // false
//	order, err := dfs.TopologicalSort(g)
package dfs
