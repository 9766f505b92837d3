// Package logging configures the shared zap logger for the Distillex CLI.
package logging

import "go.uber.org/zap"

// Logger is the process-wide logger, rebuilt by Setup.
var Logger = zap.NewNop()

// Setup rebuilds the global logger. Debug mode switches to the development
// config so combiner launches are traceable at the console.
func Setup(debug bool, appName, appVersion string) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
