// SPDX-License-Identifier: MIT

// Package logger holds the process-wide structured logger of the coda CLI.
// Library packages never log; only commands do.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global sugared logger. It is a no-op until Initialize runs,
// so early calls never panic.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize installs the global logger.
//   - jsonOutput: production JSON encoder on stderr, else a console encoder.
//   - verbose: debug level, else info.
func Initialize(jsonOutput, verbose bool) error {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = level
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		var err error
		if zapLogger, err = config.Build(); err != nil {
			return err
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Named returns a child logger tagged with component.
func Named(component string) *zap.SugaredLogger {
	return Logger.With(FieldComponent, component)
}

// Cleanup flushes buffered entries. Sync errors on terminals are ignored.
func Cleanup() {
	_ = Logger.Sync()
}
