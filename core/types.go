// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed, weighted connection From→To.
//
// ID is the position of the edge in the graph's insertion order.
type Edge struct {
	// ID is the insertion index of this edge (0, 1, 2, ...).
	ID int

	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight may be negative, zero or positive.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-allocates room for n edges. Non-positive n is ignored.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edgeCap = n
		}
	}
}

// WithoutLoops makes AddEdge reject self-loops with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is a fixed-size directed multigraph with int64 edge weights.
//
// edges holds the catalog in insertion order; out[v] lists the IDs of the
// edges leaving v, also in insertion order.
type Graph struct {
	mu sync.RWMutex // guards edges and out

	// Configuration
	numVertices int  // fixed for the lifetime of the graph
	allowLoops  bool // allow self-loops
	edgeCap     int  // initial capacity hint for edges

	// Storage
	edges []Edge
	out   [][]int
}

// NewGraph creates an empty Graph with numVertices vertices and no edges.
// By default self-loops and parallel edges are accepted.
// Complexity: O(V)
func NewGraph(numVertices int, opts ...GraphOption) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, numVertices)
	}

	g := &Graph{
		numVertices: numVertices,
		allowLoops:  true,
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	g.edges = make([]Edge, 0, g.edgeCap)
	g.out = make([][]int, numVertices)

	return g, nil
}

// checkVertex reports ErrVertexOutOfRange for v outside [0, n).
func checkVertex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, n)
	}

	return nil
}
