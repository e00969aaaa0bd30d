// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount    int  // fixed vertex count
	EdgeCount      int  // number of stored edges
	SelfLoops      int  // edges with From == To
	NegativeWeight int  // edges with Weight < 0
	ZeroWeight     int  // edges with Weight == 0
	PositiveWeight int  // edges with Weight > 0
	AllowsLoops    bool // loop policy
}

// VertexCount returns the fixed number of vertices.
//
// Complexity: O(1). The value never changes, so no lock is taken.
func (g *Graph) VertexCount() int {
	return g.numVertices
}

// Looped reports whether self-loops are permitted by policy.
//
// Complexity: O(1).
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// HasVertex reports whether v is a valid vertex index of g.
//
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.numVertices
}

// EdgeCount returns the number of edges stored.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Stats produces a read-only summary of configuration and edge catalog.
//
// Implementation:
//   - Acquire the read lock, scan edges once and classify them.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.numVertices,
		EdgeCount:   len(g.edges),
		AllowsLoops: g.allowLoops,
	}
	var e Edge
	for _, e = range g.edges {
		if e.From == e.To {
			stats.SelfLoops++
		}
		switch {
		case e.Weight < 0:
			stats.NegativeWeight++
		case e.Weight == 0:
			stats.ZeroWeight++
		default:
			stats.PositiveWeight++
		}
	}

	return &stats
}
