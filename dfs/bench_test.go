package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dfs"
)

// BenchmarkDFS_Chain measures iterative DFS on a deep linear chain —
// the shape that would overflow a recursive implementation's call stack.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 100000
	g := core.NewGraph(core.WithDirected(true))
	for i := int64(0); i < N; i++ {
		g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkDetectCycle_Ring measures cycle detection on a large ring.
func BenchmarkDetectCycle_Ring(b *testing.B) {
	const N = 50000
	g := core.NewGraph(core.WithDirected(true))
	for i := int64(0); i < N; i++ {
		g.AddEdge(i, (i+1)%N)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DetectCycle(g)
	}
}
