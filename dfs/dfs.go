// Package dfs implements the explicit-stack traversal core.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
)

// frame is one pending visit on the explicit DFS stack.
type frame struct {
	id     int64
	depth  int
	parent int64 // equals id for roots
}

// walker encapsulates mutable DFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	stack []frame
	res   *Result
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components in ascending
// vertex order; otherwise it starts only from start.
// Returns a Result, or an error if aborted by context or hook.
func DFS(g *core.Graph, start int64, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hints
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		stack: make([]frame, 0, n),
		res: &Result{
			Order:   make([]int64, 0, n),
			Depth:   make(map[int64]int, n),
			Parent:  make(map[int64]int64, n),
			Visited: make(map[int64]bool, n),
		},
	}

	// 5. Traverse: forest or single tree
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err := w.traverse(v); err != nil {
					return w.res, err
				}
			}
		}
	} else if err := w.traverse(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse drains the stack rooted at root. A vertex may sit on the
// stack more than once before being recorded, so the seen-set is checked
// both when pushing a neighbor and again when popping a frame.
func (w *walker) traverse(root int64) error {
	w.stack = append(w.stack[:0], frame{id: root, depth: 0, parent: root})

	for len(w.stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// pop the top frame
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// a stale duplicate: this vertex was reached first via another frame
		if w.res.Visited[f.id] {
			continue
		}
		w.record(f)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", f.id, err)
			}
		}
		w.pushNeighbors(f)
	}

	return nil
}

// record marks f.id visited and stores its tree metadata.
func (w *walker) record(f frame) {
	w.res.Visited[f.id] = true
	w.res.Depth[f.id] = f.depth
	if f.parent != f.id {
		w.res.Parent[f.id] = f.parent
	}
	w.res.Order = append(w.res.Order, f.id)
}

// pushNeighbors stacks f's unseen neighbors in reverse adjacency order,
// so they pop in the same left-to-right order a recursive DFS would
// descend. Honors FilterNeighbor and MaxDepth.
func (w *walker) pushNeighbors(f frame) {
	if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
		return
	}
	nbrs := w.graph.NeighborIDs(f.id)
	for i := len(nbrs) - 1; i >= 0; i-- {
		nbr := nbrs[i]
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			continue
		}
		if !w.res.Visited[nbr] {
			w.stack = append(w.stack, frame{id: nbr, depth: f.depth + 1, parent: f.id})
		}
	}
}
