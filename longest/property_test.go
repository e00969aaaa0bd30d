package longest_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
)

// randomDAG returns a builder.RandomDAG graph plus the same edges as a gonum
// graph with negated weights (so its shortest distances are our longest
// ones, negated).
func randomDAG(t *testing.T, rng *rand.Rand, n int, density float64) (*core.Graph, *simple.WeightedDirectedGraph) {
	t.Helper()
	g, err := builder.BuildGraph(n, nil,
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithWeightFn(builder.UniformWeightFn(-20, 20))},
		builder.RandomDAG(density))
	require.NoError(t, err)

	oracle := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < n; v++ {
		oracle.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		oracle.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: float64(-e.Weight)})
	}

	return g, oracle
}

// TestLongestPath_MatchesBellmanFordOracle checks optimality of every
// distance and the structural properties of the returned path.
func TestLongestPath_MatchesBellmanFordOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 2 + rng.Intn(12)
		g, oracle := randomDAG(t, rng, n, 0.35)
		start := rng.Intn(n)

		res, err := longest.LongestPath(g, start)
		require.NoError(t, err, "round %d", round)

		sp, ok := path.BellmanFordFrom(simple.Node(start), oracle)
		require.True(t, ok, "oracle found a negative cycle in a DAG")

		for v := 0; v < n; v++ {
			want := sp.WeightTo(int64(v))
			got, reached := res.Distance(v)
			if math.IsInf(want, 1) {
				assert.False(t, reached, "round %d: vertex %d should be unreached", round, v)
				continue
			}
			require.True(t, reached, "round %d: vertex %d should be reached", round, v)
			assert.Equal(t, int64(-want), got, "round %d: dist[%d]", round, v)
		}

		checkPath(t, g, res)
	}
}

// checkPath asserts the path starts at Start, follows existing edges, never
// repeats a vertex and reports the end vertex distance as its weight.
func checkPath(t *testing.T, g *core.Graph, res *longest.Result) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	assert.Equal(t, res.Start, res.Path[0])

	seen := map[int]bool{}
	for i, v := range res.Path {
		assert.False(t, seen[v], "vertex %d repeated", v)
		seen[v] = true
		if i == 0 {
			continue
		}
		out, err := g.OutEdges(res.Path[i-1])
		require.NoError(t, err)
		found := false
		for _, e := range out {
			if e.To == v {
				found = true
				break
			}
		}
		assert.True(t, found, "no edge %d→%d", res.Path[i-1], v)
	}

	end, ok := res.Distance(res.End())
	require.True(t, ok)
	assert.Equal(t, end, res.PathWeight)
}

// TestLongestPath_InjectedPositiveCycle adds a reachable positive cycle to
// random DAGs; the result must always be ErrNoPathExists.
func TestLongestPath_InjectedPositiveCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		n := 3 + rng.Intn(10)
		g, _ := randomDAG(t, rng, n, 0.3)

		// chain 0→1→…→n-1 keeps everything reachable, back edge closes a positive cycle
		for v := 0; v < n-1; v++ {
			_, err := g.AddEdge(v, v+1, 1)
			require.NoError(t, err)
		}
		a := rng.Intn(n - 1)
		_, err := g.AddEdge(n-1, a, int64(n))
		require.NoError(t, err)

		_, err = longest.LongestPath(g, 0)
		assert.ErrorIs(t, err, longest.ErrNoPathExists, "round %d", round)
	}
}
