package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/graphio"
)

// demoDocument is the four-vertex sample: A→B(1), A→C(2), B→C(-3), B→D(4),
// C→D(5), started from B.
func demoDocument() (*graphio.Document, error) {
	doc, err := graphio.NewDocument("A", "B", "C", "D")
	if err != nil {
		return nil, err
	}
	doc.Connect("A", "B", 1)
	doc.Connect("A", "C", 2)
	doc.Connect("B", "C", -3) // negative weight
	doc.Connect("B", "D", 4)
	doc.Connect("C", "D", 5)
	doc.Start = "B"

	return doc, nil
}

func newDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in four-vertex sample graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := demoDocument()
			if err != nil {
				return err
			}
			if start, _ := cmd.Flags().GetString("start"); start != "" {
				doc.Start = start
			}

			return runSolve(cmd, doc)
		},
	}
	cmd.Flags().StringP("start", "s", "", "start vertex (default B)")

	return cmd
}
