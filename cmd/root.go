package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootLogger is the logger handed down by main and shared by subcommands.
var rootLogger = zap.NewNop()

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "distillex",
	Short: "Distillex is a CLI tool for launching the TFRecord prediction combiner",
	Long: `Distillex configures and launches the external inference-combine program
that merges prediction TFRecord shards with their source video features into
a distilled dataset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it with the
// provided logger.
func Execute(logger *zap.Logger) error {
	if logger != nil {
		rootLogger = logger
	}
	return RootCmd.Execute()
}
