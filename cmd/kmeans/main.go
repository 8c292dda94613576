package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	e := &env{}
	rootCmd := NewRootCmd(version, e)
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		if e.logger != nil {
			e.logger.Error("Command failed", zap.Error(err))
			_ = e.logger.Sync()
		}
		os.Exit(1)
	}
}

// initLogger initializes the logger with the specified level and log file name.
func initLogger(level string, logfileName ...string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := []string{"stderr"}
	for _, item := range logfileName {
		if item != "" {
			outputPath = []string{item}
		}
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	return config.Build()
}
