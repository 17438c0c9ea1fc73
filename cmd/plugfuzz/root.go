package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func execute(ctx context.Context) error {
	rootCmd := newRootCommand()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plugfuzz",
		Short: "plugfuzz - pluggable coverage-guided fuzzer",
		Long: `plugfuzz is a coverage-guided fuzzer with pluggable targets.

It repeatedly feeds inputs to a target, observes coverage feedback,
minimizes inputs that exercise new coverage and mutates them to explore
further. Crashing inputs are saved with reproducer artifacts.`,
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newRunCommand())

	return rootCmd
}
