// Package core defines the Graph primitive shared by the traversal
// packages: an adjacency-list mapping from int64 vertex identifiers to
// ordered neighbor lists.
//
// What
//
//   - Graph stores one neighbor list per vertex, in insertion order.
//     Traversal order in bfs/ and dfs/ is defined by that order, so core
//     never reorders or deduplicates neighbor lists.
//   - A neighbor list may reference identifiers that were never added as
//     vertices. Such identifiers are implicit leaves: they have no
//     outgoing edges and do not appear in Vertices().
//   - Directedness is fixed at construction via WithDirected. Undirected
//     graphs insert every edge symmetrically (u→v and v→u).
//
// Why
//
//   - BFS, DFS, shortest-path reconstruction and cycle detection all
//     consume the same minimal surface: HasVertex, NeighborIDs, Vertices.
//   - Keeping the representation a plain map of slices makes construction
//     O(1) amortized per edge and iteration allocation-free.
//
// Determinism
//
//	NeighborIDs(id) preserves insertion order. Vertices() returns
//	identifiers sorted ascending, so full-graph scans (cycle detection,
//	topological sort) are reproducible.
//
// Concurrency
//
//	Graph is not synchronized. Build it fully, then share it read-only
//	across the algorithm packages.
//
// Usage
//
//	g := core.NewGraph()                 // undirected
//	g.AddEdge(1, 2)                      // inserts 1→2 and 2→1
//	d := core.NewGraph(core.WithDirected(true))
//	d.AddEdge(1, 2)                      // inserts 1→2 only; 2 is a leaf
package core
