package longest_test

import (
	"testing"

	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
)

// layered builds L layers of W vertices, each vertex linked to every vertex
// of the next layer, with seeded weights in [-5, 5].
func layered(b *testing.B, layers, width int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(layers*width, nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(-5, 5))},
		builder.Layered(width))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkLongestPath_Layered measures the full V-1 pass configuration.
func BenchmarkLongestPath_Layered(b *testing.B) {
	g := layered(b, 20, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = longest.LongestPath(g, 0)
	}
}

// BenchmarkLongestPath_LayeredEarlyExit measures the same graph with WithEarlyExit.
func BenchmarkLongestPath_LayeredEarlyExit(b *testing.B) {
	g := layered(b, 20, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = longest.LongestPath(g, 0, longest.WithEarlyExit())
	}
}
