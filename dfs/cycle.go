// Package dfs implements cycle detection via iterative three-color
// depth-first search. Adjacency is followed as stored (directed
// convention): a back-edge to a Gray vertex — one on the active path —
// signals a cycle. Every vertex is scanned, so disconnected components
// are covered.
//
// Complexity:
//
//   - Time:   O(V + E)   (each vertex and edge examined once)
//   - Memory: O(V)       (color map + explicit frame stack)
package dfs

import "github.com/katalvlaran/lvlalg/core"

// colorFrame tracks a vertex mid-exploration: its cached neighbor list
// and the index of the next neighbor to examine.
type colorFrame struct {
	id   int64
	nbrs []int64
	next int
}

// DetectCycle reports whether g contains a directed cycle.
// A nil graph is treated as cycle-free. The only possible error is
// cancellation via WithCancelContext.
func DetectCycle(g *core.Graph, options ...ScanOption) (bool, error) {
	if g == nil {
		return false, nil
	}
	opts := defaultScanOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// White=0 (unvisited), Gray=1 (on active path), Black=2 (completed)
	verts := g.Vertices()
	state := make(map[int64]int, len(verts))
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
				return false, opts.ctx.Err()
			default:
			}

			f := &stack[len(stack)-1]
			if f.next >= len(f.nbrs) {
				// all descendants explored: retire the vertex
				state[f.id] = Black
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
				// back-edge onto the active path
				return true, nil
			}
		}
	}

	return false, nil
}

// HasCycle is the boolean convenience form of DetectCycle with default
// options; it can never fail.
func HasCycle(g *core.Graph) bool {
	found, _ := DetectCycle(g)

	return found
}
