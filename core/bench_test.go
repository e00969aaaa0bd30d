// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/longpath/core"
)

// BenchmarkAddEdge measures appending edges into a pre-sized graph.
func BenchmarkAddEdge(b *testing.B) {
	const V = 1024
	g, _ := core.NewGraph(V, core.WithEdgeCapacity(b.N))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(i%V, (i*7+1)%V, int64(i%13)-6)
	}
}

// BenchmarkSnapshot measures copying a dense-ish graph.
func BenchmarkSnapshot(b *testing.B) {
	const V = 512
	g, _ := core.NewGraph(V)
	for u := 0; u < V; u++ {
		for k := 1; k <= 8; k++ {
			_, _ = g.AddEdge(u, (u+k)%V, int64(k))
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}
