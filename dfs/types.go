// Package dfs defines types and options for depth-first traversal,
// including cancellation, a visit hook, depth limiting, neighbor
// filtering, and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Vertex colors for cycle detection and topological sort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the active traversal path.
	Black        // Black: the vertex and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or DetectCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle blocks TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates TopologicalSort was invoked on an
	// undirected graph, where every edge is trivially a 2-cycle.
	ErrUndirected = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is popped and recorded.
	// Returning an error aborts traversal with that error.
	OnVisit func(id int64) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before it
	// is pushed. Return true to traverse into that neighbor.
	FilterNeighbor func(id int64) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in
	// ascending order, covering disconnected components. Default is false.
	FullTraversal bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - no visit hook
//   - no depth limit (MaxDepth = -1)
//   - no neighbor filtering
//   - single-source traversal
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(id int64) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that prunes neighbors for which
// fn returns false.
func WithFilterNeighbor(fn func(id int64) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that extends DFS over every
// component of the graph (forest traversal).
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result holds the outcome of a DFS traversal:
//   - Order: vertices in the order they were recorded (pre-order).
//   - Depth: map from vertex ID to its depth in the DFS tree.
//   - Parent: map from vertex ID to its predecessor; roots have no entry.
//   - Visited: set of all recorded vertices.
type Result struct {
	Order   []int64
	Depth   map[int64]int
	Parent  map[int64]int64
	Visited map[int64]bool
}

// ScanOption configures full-graph scans (DetectCycle, TopologicalSort),
// which expose only cancellation.
type ScanOption func(*scanOptions)

// scanOptions holds settings for full-graph scans.
type scanOptions struct {
	ctx context.Context
}

// defaultScanOptions returns the default scan options (Background context).
func defaultScanOptions() scanOptions {
	return scanOptions{ctx: context.Background()}
}

// WithCancelContext returns a ScanOption that sets the cancellation
// context. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) ScanOption {
	return func(o *scanOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
