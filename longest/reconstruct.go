package longest

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Reconstruct rebuilds one longest path from a completed distance table.
//
// Starting at start, each step scans edges in order and considers those whose
// From is the current vertex (and reachable). Among them it picks the edge
// whose To has the greatest finite distance; the first such edge wins ties and
// targets with unreached distance never qualify. The walk stops when no edge
// qualifies.
//
// Returns the visited vertices (beginning with start) and dist of the last
// vertex, the longest distance from start to where the walk ended. The weight
// of the walked edges is never summed; with ties it may differ from that
// distance, and it can leave the int64 range even when every distance fits.
//
// The walk keeps its own visited set. If the best next vertex was already on
// the path (the table came from a graph with a reachable cycle), it fails with
// ErrInconsistentPath rather than looping.
//
// Complexity: O(L·E) for a path of L vertices.
func Reconstruct(edges []core.Edge, start int, dist []Distance, reach []bool) ([]int, int64, error) {
	n := len(dist)
	if len(reach) != n {
		return nil, 0, fmt.Errorf("%w: %d distances, %d reachability flags", ErrInconsistentPath, n, len(reach))
	}
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("%w: start %d not in [0,%d)", ErrInconsistentPath, start, n)
	}

	visited := make([]bool, n)
	visited[start] = true
	path := []int{start}

	var (
		cur = start
		e   core.Edge
	)
	for {
		found := false
		var best core.Edge
		for _, e = range edges {
			if e.From != cur || !reach[e.From] {
				continue
			}
			if e.To < 0 || e.To >= n {
				return nil, 0, fmt.Errorf("%w: edge %d→%d outside table of %d", ErrInconsistentPath, e.From, e.To, n)
			}
			if !dist[e.To].Reached {
				continue
			}
			if !found || dist[best.To].Less(dist[e.To]) {
				best = e
				found = true
			}
		}
		if !found {
			if !dist[cur].Reached {
				return nil, 0, fmt.Errorf("%w: walk ended on unreached %d", ErrInconsistentPath, cur)
			}
			return path, dist[cur].Value, nil
		}

		if visited[best.To] {
			return nil, 0, fmt.Errorf("%w: walk %v would revisit %d", ErrInconsistentPath, path, best.To)
		}
		visited[best.To] = true
		path = append(path, best.To)
		cur = best.To
	}
}
