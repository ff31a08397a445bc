package core

import "sort"

// AddVertex registers id with an (initially empty) neighbor list.
// Adding an existing vertex is a no-op, preserving its neighbors.
// Complexity: O(1).
func (g *Graph) AddVertex(id int64) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// AddEdge inserts the edge from→to, creating the source vertex on demand.
// In an undirected graph the mirror edge to→from is inserted as well.
// In a directed graph `to` is left as an implicit leaf unless added
// explicitly. Parallel insertions are kept as-is; the traversal packages
// deduplicate via their seen-sets.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64) {
	g.adjacency[from] = append(g.adjacency[from], to)
	if !g.directed {
		g.adjacency[to] = append(g.adjacency[to], from)
	}
	g.edgeCount++
}

// HasVertex reports whether id was added as a vertex (i.e. is a key of
// the adjacency map). Implicit leaves report false.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether `to` appears in the neighbor list of `from`.
// Complexity: O(d) where d = len(NeighborIDs(from)).
func (g *Graph) HasEdge(from, to int64) bool {
	for _, nbr := range g.adjacency[from] {
		if nbr == to {
			return true
		}
	}

	return false
}

// NeighborIDs returns a copy of id's neighbor list in insertion order.
// Absent vertices (implicit leaves included) yield nil.
// Complexity: O(d) time and memory.
func (g *Graph) NeighborIDs(id int64) []int64 {
	nbrs, ok := g.adjacency[id]
	if !ok || len(nbrs) == 0 {
		return nil
	}

	return append([]int64(nil), nbrs...)
}

// Vertices returns all explicitly added vertex identifiers, sorted
// ascending for deterministic full-graph iteration.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	ids := make([]int64, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// AdjacencyList returns an independent copy of the underlying adjacency
// map. Mutating the copy does not affect the Graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[int64][]int64 {
	out := make(map[int64][]int64, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = append([]int64(nil), nbrs...)
	}

	return out
}

// Directed reports the construction-time directedness flag.
func (g *Graph) Directed() bool {
	return g.directed
}

// VertexCount returns the number of explicitly added vertices.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls accepted
// (mirror insertions in undirected graphs are not counted twice).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Clone returns a deep copy of the Graph sharing no storage with the
// original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return &Graph{
		directed:  g.directed,
		adjacency: g.AdjacencyList(),
		edgeCount: g.edgeCount,
	}
}
