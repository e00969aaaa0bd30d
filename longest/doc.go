// Package longest computes the longest weighted path from a start vertex in a
// directed graph with integer edge weights, using a maximizing variant of
// Bellman-Ford restricted to the vertices reachable from the start.
//
// Overview:
//
//   - LongestPath(g, start) scans reachability (package dfs), relaxes every edge
//     exactly V-1 times, runs one more pass to detect a reachable cycle of
//     positive total weight, and finally walks the distance table greedily to
//     produce a path.
//   - The graph does not have to be acyclic. Cycles with non-positive weight are
//     harmless for the distance table; a reachable positive cycle makes the
//     longest path unbounded and is reported as ErrNoPathExists.
//   - Distances are tagged values (Distance): "unreached" is a separate state,
//     never a magic integer. Relaxation accumulates in 128 bits, so a transient
//     sum outside int64 neither fails the query nor hides a positive cycle;
//     only a final distance outside int64 is reported as ErrOverflow.
//
// Algorithm:
//
//  1. reach := dfs.Reachable(start)
//  2. dist[v] = unreached for all v; dist[start] = 0
//  3. repeat V-1 times: for each edge (u,v,w) in insertion order,
//     if reach[u] and dist[u] is finite and dist[u]+w > dist[v], set dist[v].
//  4. one more pass under the same condition; any improvement → ErrNoPathExists.
//  5. Reconstruct: from start, repeatedly follow the outgoing edge whose target
//     has the greatest finite distance (first edge wins ties) until no edge
//     qualifies.
//
// Results:
//
//   - A start vertex without outgoing edges yields the single-vertex path [start].
//     This is a success, never confused with ErrNoPathExists.
//   - The reconstruction walk refuses to revisit a vertex and reports
//     ErrInconsistentPath instead of looping.
//
// Complexity:
//
//   - Time:  O(V·E) for relaxation, O(L·E) for reconstruction of a path of L vertices.
//   - Space: O(V + E) per call (distance table, reachability set, edge snapshot).
//
// Concurrency:
//
//   - Each call owns its temporaries and works on a core.Snapshot, so one graph
//     may serve many concurrent queries.
//
// Errors (sentinel):
//
//   - ErrGraphNil         graph pointer is nil.
//   - ErrVertexOutOfRange start index outside [0, V) (same value as core.ErrVertexOutOfRange).
//   - ErrNoPathExists     positive-weight cycle reachable from start.
//   - ErrOverflow         a longest distance does not fit in int64 (no positive cycle).
//   - ErrInconsistentPath reconstruction input is not a consistent distance vector.
//
// Example usage:
//
//	res, err := longest.LongestPath(g, 1)
//	switch {
//	case errors.Is(err, longest.ErrNoPathExists):
//	    fmt.Println("positive cycle, no longest path")
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println(res.Path, res.PathWeight)
//	}
package longest
