// Package cli wires the longestpath command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/longpath/internal/config"
)

// Execute runs the root command against the process streams.
func Execute() error {
	return execute(NewRootCommand(os.Stdout, os.Stderr), os.Stderr)
}

// execute runs root and reports its error on errOut. errNoPath has already
// been rendered on stdout and is only passed through for the exit status.
func execute(root *cobra.Command, errOut io.Writer) error {
	err := root.Execute()
	if err != nil && !errors.Is(err, errNoPath) {
		fmt.Fprintln(errOut, err)
	}

	return err
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "longestpath",
		Short:         "Longest weighted path from a start vertex",
		Long:          "longestpath loads a directed weighted graph and reports the longest path from a start vertex, or that a positive cycle makes it unbounded.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .longpath.yaml)")
	pf.StringP("format", "f", config.FormatTable, "output format: table, plain or json")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("early-exit", false, "stop relaxation once a pass changes nothing")

	root.AddCommand(newSolveCommand(), newDemoCommand(), newStatsCommand())

	return root
}

// initConfig resets viper, reads the optional config file and binds flags.
func initConfig(cmd *cobra.Command) error {
	viper.Reset()

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		viper.SetConfigName(".longpath")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = viper.ReadInConfig()
	}

	viper.SetEnvPrefix("LONGPATH")
	viper.AutomaticEnv()

	for key, flag := range map[string]string{
		"format":     "format",
		"log_level":  "log-level",
		"log_format": "log-format",
		"early_exit": "early-exit",
	} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}

	return nil
}
