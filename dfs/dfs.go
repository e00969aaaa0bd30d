package dfs

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Reachable marks every vertex reachable from start by following directed
// edges. The start vertex is always reachable from itself.
//
// Steps:
//  1. Validate graph and start index.
//  2. Mark start and push it on the stack.
//  3. Pop a vertex, expand its out-edges, mark and push each unmarked target.
//
// Complexity: O(V+E) time, O(V) memory plus the stack.
func Reachable(g Digraph, start int, opts ...Option) ([]bool, error) {
	// 1. Validate input
	if isNil(g) {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d): %w", ErrStartOutOfRange, start, n, core.ErrVertexOutOfRange)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	reach := make([]bool, n)
	stack := make([]int, 0, n)

	// 2. Seed with start
	if err := mark(reach, start, o); err != nil {
		return nil, err
	}
	stack = append(stack, start)

	// 3. Expand until the stack drains
	var (
		u   int
		out []core.Edge
		e   core.Edge
		err error
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if out, err = g.OutEdges(u); err != nil {
			return nil, fmt.Errorf("dfs: OutEdges(%d): %w", u, err)
		}
		for _, e = range out {
			if o.FilterEdge != nil && !o.FilterEdge(e) {
				continue
			}
			if reach[e.To] {
				continue
			}
			if err = mark(reach, e.To, o); err != nil {
				return nil, err
			}
			stack = append(stack, e.To)
		}
	}

	return reach, nil
}

// isNil reports a nil interface or a nil *core.Graph / *core.Snapshot
// stored in it.
func isNil(g Digraph) bool {
	switch x := g.(type) {
	case nil:
		return true
	case *core.Graph:
		return x == nil
	case *core.Snapshot:
		return x == nil
	}

	return false
}

// mark flags v as reached and runs the visit hook.
func mark(reach []bool, v int, o Options) error {
	reach[v] = true
	if o.OnVisit != nil {
		if err := o.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}

// Collect returns the indices marked in reach, ascending.
func Collect(reach []bool) []int {
	res := make([]int, 0, len(reach))
	for v, ok := range reach {
		if ok {
			res = append(res, v)
		}
	}

	return res
}
