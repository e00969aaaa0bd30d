// Package dfs defines types and options for the reachability scan.
package dfs

import (
	"errors"

	"github.com/katalvlaran/longpath/core"
)

var (
	// ErrGraphNil is returned when Reachable gets a nil graph, including a nil
	// *core.Graph or *core.Snapshot wrapped in the Digraph interface.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start index is not a vertex of the graph.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// Digraph is the read-only view Reachable needs. Both *core.Graph and
// *core.Snapshot satisfy it.
type Digraph interface {
	VertexCount() int
	OutEdges(v int) ([]core.Edge, error)
}

// Option configures optional behavior of the scan.
type Option func(*Options)

// Options holds configurable parameters for Reachable.
type Options struct {
	// OnVisit, if non-nil, is invoked once per vertex when it is first marked.
	// Returning an error aborts the scan with that error.
	OnVisit func(v int) error

	// FilterEdge, if non-nil, is consulted for each outgoing edge.
	// Return false to skip the edge.
	FilterEdge func(e core.Edge) bool
}

// DefaultOptions returns Options with no hooks and no filter.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFilterEdge installs fn as an edge filter.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}
