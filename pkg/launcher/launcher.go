// Package launcher assembles and spawns the external inference-combine
// invocation that merges prediction TFRecord shards into a distilled dataset.
// The launcher owns only the invocation: paths and patterns are handed to the
// combiner unvalidated, and every failure beyond the spawn itself belongs to
// the combiner.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Run resolves the combiner program, spawns it with the rendered flags and a
// GPU-disabled environment, and blocks until it exits. The returned int is
// the child's exit code. A program that cannot be started yields a
// *LaunchError; a non-zero exit yields the child's code and a *ExitError.
func Run(ctx context.Context, args *Arguments, logger *zap.Logger) (int, error) {
	args.Derive()
	argv := args.CommandLine()

	program, err := exec.LookPath(args.Program)
	if err != nil {
		logger.Error("Combiner program not found", zap.String("program", args.Program), zap.Error(err))
		return -1, &LaunchError{Program: args.Program, Err: err}
	}

	if args.DryRun {
		logger.Info("Dry run, skipping launch", zap.String("program", program), zap.Strings("args", argv))
		fmt.Println(strings.Join(append([]string{program}, argv...), " "))
		return 0, nil
	}

	logger.Info("Launching combiner",
		zap.String("program", program),
		zap.String("outputDir", args.OutputDir),
		zap.String("inputDataPattern", args.InputDataPattern),
		zap.String("predictionDataPattern", args.PredictionDataPattern),
		zap.Int("batchSize", args.BatchSize),
		zap.Int("fileSize", args.FileSize))

	startTime := time.Now()
	cmd := exec.CommandContext(ctx, program, argv...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = childEnv(os.Environ())

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			code := exitErr.ExitCode()
			logger.Error("Combiner exited with failure",
				zap.Int("exitCode", code),
				zap.Duration("elapsed", time.Since(startTime)))
			return code, &ExitError{Program: args.Program, Code: code}
		}
		logger.Error("Combiner failed to run", zap.String("program", program), zap.Error(err))
		return -1, &LaunchError{Program: args.Program, Err: err}
	}

	logger.Info("Combiner completed", zap.Duration("elapsed", time.Since(startTime)))
	return 0, nil
}
