// Package core declares the Graph type, its construction options,
// and the NewGraph constructor.
package core

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
// Undirected graphs mirror every AddEdge call.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory adjacency-list graph.
//
// adjacency maps a vertex identifier to its neighbor list in insertion
// order. Identifiers referenced only inside neighbor lists (never added
// as vertices) are treated as leaves with no outgoing edges.
type Graph struct {
	directed  bool              // true = edges are one-way
	adjacency map[int64][]int64 // vertex id → ordered neighbor ids
	edgeCount int               // number of AddEdge calls accepted
}

// NewGraph constructs an empty Graph, applying options left to right.
// The default graph is undirected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  false,
		adjacency: make(map[int64][]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
