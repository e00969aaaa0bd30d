// File: view.go
// Role: Immutable point-in-time views of a Graph.
// Determinism:
//   - Preserves edge IDs and insertion order.
// Concurrency:
//   - Read lock on the source while copying; the Snapshot itself needs no locks.

package core

// Snapshot is a read-only copy of a Graph's edge catalog and out-edge index.
// Later AddEdge calls on the source graph are not visible through it.
type Snapshot struct {
	numVertices int
	edges       []Edge
	out         [][]int
}

// Snapshot copies the current topology of g.
//
// Complexity: O(V + E). Concurrency: read lock only.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		numVertices: g.numVertices,
		edges:       make([]Edge, len(g.edges)),
		out:         make([][]int, g.numVertices),
	}
	copy(s.edges, g.edges)
	for v, ids := range g.out {
		if len(ids) == 0 {
			continue
		}
		s.out[v] = append([]int(nil), ids...)
	}

	return s
}

// VertexCount returns the vertex count captured by the snapshot.
func (s *Snapshot) VertexCount() int { return s.numVertices }

// EdgeCount returns the number of captured edges.
func (s *Snapshot) EdgeCount() int { return len(s.edges) }

// HasVertex reports whether v is a valid vertex index.
func (s *Snapshot) HasVertex(v int) bool { return v >= 0 && v < s.numVertices }

// Edges returns the captured edges in insertion order. The slice is shared;
// callers must not modify it.
func (s *Snapshot) Edges() []Edge { return s.edges }

// OutEdges returns the captured edges leaving v in insertion order.
func (s *Snapshot) OutEdges(v int) ([]Edge, error) {
	if err := checkVertex(v, s.numVertices); err != nil {
		return nil, err
	}

	return collectOut(s.edges, s.out[v]), nil
}
