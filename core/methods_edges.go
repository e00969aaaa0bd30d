// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/OutEdges.
// Determinism:
//   - Edges() and OutEdges() return edges in insertion order (ascending ID).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddEdge appends the directed edge from→to with the given weight and
// returns its ID.
//
// Steps:
//  1. Validate both endpoints against [0, VertexCount()).
//  2. Reject self-loops when WithoutLoops is set.
//  3. Lock, append to the catalog and to out[from].
//
// Nothing is stored when validation fails.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) (int, error) {
	// 1) Input validation
	if err := checkVertex(from, g.numVertices); err != nil {
		return -1, err
	}
	if err := checkVertex(to, g.numVertices); err != nil {
		return -1, err
	}
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: weight})
	g.out[from] = append(g.out[from], eid)

	return eid, nil
}

// Edges returns a copy of all edges in insertion order.
//
// Complexity: O(E). Concurrency: read lock.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res := make([]Edge, len(g.edges))
	copy(res, g.edges)

	return res
}

// OutEdges returns the edges leaving v in insertion order.
//
// Complexity: O(deg⁺(v)). Concurrency: read lock.
func (g *Graph) OutEdges(v int) ([]Edge, error) {
	if err := checkVertex(v, g.numVertices); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return collectOut(g.edges, g.out[v]), nil
}

// collectOut resolves edge IDs against the catalog.
func collectOut(edges []Edge, ids []int) []Edge {
	res := make([]Edge, len(ids))
	for i, eid := range ids {
		res[i] = edges[eid]
	}

	return res
}
