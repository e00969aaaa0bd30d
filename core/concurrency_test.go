// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// are safe and every edge gets a distinct ID.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of concurrent adds
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(0, id+1, int64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	out, err := g.OutEdges(0)
	require.NoError(t, err)
	require.Len(t, out, num)

	seen := make(map[int]bool, num)
	for _, e := range g.Edges() {
		require.False(t, seen[e.ID], "duplicate edge ID %d", e.ID)
		seen[e.ID] = true
	}
}

// TestConcurrentReadsDuringWrites mixes AddEdge with Snapshot/Stats readers.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	const rounds = 100
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge(i%4, (i+1)%4, 1)
		}(i)
		go func() {
			defer wg.Done()
			s := g.Snapshot()
			_ = g.Stats()
			// a snapshot is internally consistent: every indexed edge exists
			for v := 0; v < s.VertexCount(); v++ {
				out, err := s.OutEdges(v)
				require.NoError(t, err)
				for _, e := range out {
					require.Equal(t, v, e.From)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}
