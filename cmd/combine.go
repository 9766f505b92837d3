package cmd

import (
	"fmt"

	"distillex/pkg/launcher"
	"distillex/pkg/logging"
	"distillex/pkg/version"

	"github.com/spf13/cobra"
)

// combineCmd launches the external combiner. The flag defaults reproduce the
// original launch configuration, so a bare `distillex combine` performs the
// same invocation the historical launch script did.
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Launch the external TFRecord prediction combiner",
	Long: `Combine invokes the external inference-combine program with the configured
input, prediction and output locations. GPU visibility is disabled for the
child process, and the combiner's exit status becomes the distillex exit
status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		launchArgs, err := argumentsFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		logger := rootLogger
		if debug {
			if err := logging.Setup(true, "Distillex", version.Get().Version); err != nil {
				return fmt.Errorf("failed to configure debug logging: %w", err)
			}
			logger = logging.Logger
		}

		// The exit code travels inside *launcher.ExitError; main unpacks it.
		_, err = launcher.Run(cmd.Context(), launchArgs, logger)
		return err
	},
}

// argumentsFromFlags collects the combine flags into launcher arguments.
// Empty pattern and output flags stay empty here; launcher.Run derives them
// from the data path.
func argumentsFromFlags(cmd *cobra.Command) (*launcher.Arguments, error) {
	launchArgs := launcher.Defaults()
	flags := cmd.Flags()

	var err error
	if launchArgs.DataPath, err = flags.GetString("data_path"); err != nil {
		return nil, err
	}
	if launchArgs.InputDataPattern, err = flags.GetString("input_data_pattern"); err != nil {
		return nil, err
	}
	if launchArgs.PredictionDataPattern, err = flags.GetString("prediction_data_pattern"); err != nil {
		return nil, err
	}
	if launchArgs.OutputDir, err = flags.GetString("output_dir"); err != nil {
		return nil, err
	}
	if launchArgs.BatchSize, err = flags.GetInt("batch_size"); err != nil {
		return nil, err
	}
	if launchArgs.FileSize, err = flags.GetInt("file_size"); err != nil {
		return nil, err
	}
	if launchArgs.Program, err = flags.GetString("program"); err != nil {
		return nil, err
	}
	if launchArgs.DryRun, err = flags.GetBool("dry_run"); err != nil {
		return nil, err
	}
	return launchArgs, nil
}

func init() {
	defaults := launcher.Defaults()

	combineCmd.Flags().String("data_path", defaults.DataPath, "Base directory for prediction shards")
	combineCmd.Flags().String("input_data_pattern", defaults.InputDataPattern, "Glob locating the source video-feature TFRecord shards")
	combineCmd.Flags().String("prediction_data_pattern", "", "Glob locating the prediction shards to combine (derived from data_path when empty)")
	combineCmd.Flags().String("output_dir", "", "Destination directory for combined output shards (derived from data_path when empty)")
	combineCmd.Flags().Int("batch_size", defaults.BatchSize, "Records processed per batch by the combiner")
	combineCmd.Flags().Int("file_size", defaults.FileSize, "Target record count per combined output shard")
	combineCmd.Flags().String("program", defaults.Program, "Path or name of the external combiner program")
	combineCmd.Flags().Bool("dry_run", false, "Print the resolved invocation without launching it")
	combineCmd.Flags().Bool("debug", false, "Enable debug logging")

	RootCmd.AddCommand(combineCmd)
}
