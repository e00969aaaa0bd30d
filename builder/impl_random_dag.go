// File: impl_random_dag.go
// Role: RandomDAG constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

const methodRandomDAG = "RandomDAG"

// RandomDAG adds u→v for each pair u<v independently with probability p.
// Every edge points from a lower to a higher index, so the result is acyclic
// and holds at most one edge per ordered pair. Pairs are visited in
// lexicographic order; the RNG draws the coin before the weight.
//
// Errors: ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(V²).
func RandomDAG(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomDAG, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
		}

		n := g.VertexCount()
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomDAG, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
