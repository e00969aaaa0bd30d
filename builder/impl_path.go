// File: impl_path.go
// Role: Path and Cycle constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
)

// Path links every vertex to its successor: 0→1→…→n-1.
// Requires at least 2 vertices.
// Complexity: O(V).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodPath, n, ErrTooFewVertices)
		}
		for v := 0; v < n-1; v++ {
			if err := addEdge(g, cfg, methodPath, v, v+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path followed by the closing edge n-1→0.
// Requires at least 2 vertices.
// Complexity: O(V).
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodCycle, n, ErrTooFewVertices)
		}
		if err := Path()(g, cfg); err != nil {
			return err
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}
