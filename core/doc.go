// Package core provides the directed, integer-weighted graph store used by
// the longest-path solver.
//
// The Graph G = (V,E) has a fixed vertex count chosen at construction time.
// Vertices are plain indices in the half-open range [0, VertexCount()); they
// carry no payload and are compared by value. Edges are kept in an ordered
// sequence: the position of an edge in that sequence is its ID, and every
// read method returns edges in that order. Algorithms rely on this for
// deterministic tie-breaking.
//
// Configuration Options (GraphOption):
//
//	- WithEdgeCapacity(n int)
//	    Pre-sizes the edge catalog for n edges.
//
//	- WithoutLoops()
//	    Rejects self-loops (from == to) with ErrLoopNotAllowed.
//	    Loops are accepted by default.
//
// Core Methods:
//
//	// Construction
//	NewGraph(numVertices int, opts ...GraphOption) (*Graph, error)  // O(V)
//	AddEdge(from, to int, weight int64) (edgeID int, err error)     // O(1) amortized
//
//	// Queries
//	VertexCount() int                  // O(1)
//	EdgeCount() int                    // O(1)
//	HasVertex(v int) bool              // O(1)
//	Edges() []Edge                     // O(E), insertion order
//	OutEdges(v int) ([]Edge, error)    // O(deg⁺(v)), insertion order
//	Stats() *GraphStats                // O(E)
//
//	// Views
//	Snapshot() *Snapshot               // O(V+E) immutable copy
//
// Concurrency:
//
//	A single sync.RWMutex guards the edge catalog and the out-edge index.
//	Reads may run in parallel; AddEdge takes the write lock. A query that
//	must see one consistent edge order should work on a Snapshot.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with numVertices < 0.
//	ErrVertexOutOfRange    - vertex index outside [0, VertexCount()).
//	ErrLoopNotAllowed      - self-loop when WithoutLoops is set.
package core
