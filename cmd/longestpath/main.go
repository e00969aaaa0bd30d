// Command longestpath computes longest weighted paths in directed graphs
// described by YAML, TOML or JSON files.
package main

import (
	"os"

	"github.com/katalvlaran/longpath/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
