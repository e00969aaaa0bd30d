package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/internal/config"
	"github.com/katalvlaran/longpath/longest"
)

// errNoPath marks a completed run whose answer is "no longest path"; the
// message has already been rendered.
var errNoPath = errors.New("no longest path exists")

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the longest path in a graph file",
		Example: `  longestpath solve --graph dag.yaml --start B
  longestpath solve -g dag.toml -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("graph")
			start, _ := cmd.Flags().GetString("start")

			doc, err := graphio.Load(path)
			if err != nil {
				return err
			}
			if start != "" {
				doc.Start = start
			}

			return runSolve(cmd, doc)
		},
	}
	cmd.Flags().StringP("graph", "g", "", "graph definition file (.yaml, .yml, .json, .toml)")
	cmd.Flags().StringP("start", "s", "", "start vertex label or index (default: document start, else 0)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// runSolve builds the graph from doc, runs the solver and renders the outcome.
func runSolve(cmd *cobra.Command, doc *graphio.Document) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())

	start, ok, err := doc.StartVertex()
	if err != nil {
		return err
	}
	if !ok {
		start = 0
	}

	g, err := doc.Build()
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "start", doc.Name(start))

	opts := []longest.Option{longest.WithLogger(logger)}
	if cfg.EarlyExit {
		opts = append(opts, longest.WithEarlyExit())
	}

	res, err := longest.LongestPath(g, start, opts...)
	switch {
	case errors.Is(err, longest.ErrNoPathExists):
		logger.Warn("positive cycle reachable", "start", doc.Name(start), "err", err)
		if rerr := renderNoPath(cmd.OutOrStdout(), cfg.Format, doc, start); rerr != nil {
			return rerr
		}
		return errNoPath
	case err != nil:
		return fmt.Errorf("solve from %s: %w", doc.Name(start), err)
	}

	return renderResult(cmd.OutOrStdout(), cfg.Format, doc, res)
}
