// Package bfs implements the queue-based traversal core and the
// shortest-path convenience wrapper.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[int64]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker with capacity hints
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int64]bool, n),
		res: &Result{
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}

	// Seed queue with the start vertex (no parent entry)
	w.enqueue(start, 0, start)
	// Main loop
	return w.res, w.loop()
}

// ShortestPath runs BFS from start and reconstructs a fewest-hop path to
// goal via the parent map. found is false when goal is unreachable; that
// is a valid outcome, not an error. Errors mirror BFS.
func ShortestPath(g *core.Graph, start, goal int64, opts ...Option) (path []int64, found bool, err error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, false, err
	}
	path, found = res.PathTo(goal)

	return path, found, nil
}

// enqueue marks id visited at depth d, records its parent link,
// calls OnEnqueue, and appends it to the queue.
// The start vertex is its own parent and gets no Parent entry.
func (w *walker) enqueue(id int64, d int, parent int64) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in adjacency insertion order.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.graph.NeighborIDs(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
