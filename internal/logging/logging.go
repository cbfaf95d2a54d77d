// Package logging builds the structured diagnostic logger used by the CLI.
//
// Diagnostics go to stderr so that stdout carries only roots and reports.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	Verbose bool      // Emit debug-level entries
	Quiet   bool      // Discard everything
	Output  io.Writer // Destination; defaults to os.Stderr
}

// New returns a console logger configured from opts.
// Quiet wins over Verbose; the CLI rejects the combination before this point.
func New(opts Options) *zap.Logger {
	if opts.Quiet {
		return zap.NewNop()
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if opts.Verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(out)),
		level,
	)
	return zap.New(core)
}
