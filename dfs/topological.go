// Package dfs provides topological sorting of directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack, state map, post-order slice)
package dfs

import "github.com/katalvlaran/lvlalg/core"

// TopologicalSort computes a topological ordering of all vertices in g,
// implicit leaves included.
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirected.
// If a cycle is detected, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...ScanOption) ([]int64, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrUndirected
	}
	// 3. Apply optional settings
	opts := defaultScanOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 4. Drive colored DFS from every unvisited vertex, collecting
	//    post-order: a vertex is appended only after all its descendants.
	verts := g.Vertices()
	state := make(map[int64]int, len(verts))
	order := make([]int64, 0, len(verts))
	stack := make([]colorFrame, 0, len(verts))

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		state[v] = Gray
		stack = append(stack[:0], colorFrame{id: v, nbrs: g.NeighborIDs(v)})

		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			f := &stack[len(stack)-1]
			if f.next >= len(f.nbrs) {
				state[f.id] = Black
				order = append(order, f.id)
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := f.nbrs[f.next]
			f.next++

			switch state[nbr] {
			case White:
				state[nbr] = Gray
				stack = append(stack, colorFrame{id: nbr, nbrs: g.NeighborIDs(nbr)})
			case Gray:
				return nil, ErrCycleDetected
			}
		}
	}

	// 5. Reverse post-order to produce the topological order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
