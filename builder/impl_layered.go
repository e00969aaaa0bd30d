// File: impl_layered.go
// Role: Layered constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

const methodLayered = "Layered"

// Layered splits the vertices into consecutive layers of width vertices and
// links every vertex of layer l to every vertex of layer l+1. A trailing
// partial layer is linked like a full one.
//
// Errors: ErrOptionViolation if width < 1.
// Complexity: O(V·width).
func Layered(width int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if width < 1 {
			return fmt.Errorf("%s: width=%d: %w", methodLayered, width, ErrOptionViolation)
		}

		n := g.VertexCount()
		for lo := 0; lo+width < n; lo += width {
			next := lo + width
			end := min(next+width, n)
			for u := lo; u < next; u++ {
				for v := next; v < end; v++ {
					if err := addEdge(g, cfg, methodLayered, u, v); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
