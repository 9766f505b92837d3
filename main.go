package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"distillex/cmd"
	"distillex/pkg/launcher"
	"distillex/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := zap.NewProduction(zap.Fields(
		zap.String("appName", "Distillex"),
		zap.String("appVersion", version.Get().Version),
	))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		// The combiner's exit status is the launcher's exit status; nothing
		// else is reinterpreted.
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			logger.Error("Combiner run failed", zap.Int("exitCode", exitErr.Code))
			syncLogger(logger)
			os.Exit(exitErr.Code)
		}
		logger.Error("distillex execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger, but only when stderr is a terminal or a
// regular file. Syncing a pipe fails with "invalid argument" on some
// platforms.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
