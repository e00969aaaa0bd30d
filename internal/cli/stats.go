package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/internal/config"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize a graph file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString("graph")
			doc, err := graphio.Load(path)
			if err != nil {
				return err
			}
			g, err := doc.Build()
			if err != nil {
				return err
			}

			return renderStats(cmd.OutOrStdout(), cfg.Format, g.Stats())
		},
	}
	cmd.Flags().StringP("graph", "g", "", "graph definition file (.yaml, .yml, .json, .toml)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
