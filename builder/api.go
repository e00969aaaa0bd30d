// File: api.go
// Role: BuildGraph orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Constructor adds edges to g using the resolved configuration.
// Constructors validate their parameters first and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph of n vertices with gopts, resolves bopts and
// applies cons in order. The first failing constructor aborts the build.
//
// Complexity: O(V) plus the cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws the next weight and adds from→to, tagging failures with
// the constructor name.
func addEdge(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	if _, err := g.AddEdge(from, to, cfg.weightFn(cfg.rng)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, from, to, ErrConstructFailed, err)
	}

	return nil
}
