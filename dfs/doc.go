// Package dfs implements the reachability scan used by the longest-path
// solver: a depth-first traversal over directed edges that marks every vertex
// reachable from a start vertex.
//
// What:
//
//   - Reachable(g, start, opts...) returns a []bool where reach[v] is true iff
//     a directed path of zero or more edges leads from start to v.
//   - The traversal uses an explicit stack instead of recursion, so deep
//     chains cannot exhaust the goroutine stack.
//   - Each vertex is marked before its out-edges are expanded and is expanded
//     at most once.
//
// Options:
//
//   - WithOnVisit(fn)     pre-order hook on vertex discovery; error aborts traversal.
//   - WithFilterEdge(fn)  return false to ignore an edge during the scan.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) for the mark array plus O(E) worst-case stack.
//
// Errors:
//
//   - ErrGraphNil         graph is nil.
//   - ErrStartOutOfRange  start index outside [0, VertexCount()); also matches
//     core.ErrVertexOutOfRange via errors.Is.
//   - hook errors         propagated from OnVisit.
package dfs
