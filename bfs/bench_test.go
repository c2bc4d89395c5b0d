package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qubogrid/bfs"
	"github.com/katalvlaran/qubogrid/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of 10 001 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	g := chain(10001)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkMultiSource_Lattice seeds one row of a 40×40 lattice.
func BenchmarkMultiSource_Lattice(b *testing.B) {
	const side = 40
	g := core.NewGraph()
	id := func(x, y int) string { return fmt.Sprintf("%d:%d", x, y) }
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			if x+1 < side {
				_, _ = g.AddEdge(id(x, y), id(x+1, y), 0)
			}
			if y+1 < side {
				_, _ = g.AddEdge(id(x, y), id(x, y+1), 0)
			}
		}
	}
	starts := make([]string, 0, side)
	for x := 0; x < side; x++ {
		starts = append(starts, id(x, 0))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.MultiSource(g, starts)
	}
}
