// Package logger provides a single global diagnostic logger for gcsim. It
// is initialized to discard all output by default; the REPL's own
// responses never go through it, only collector/heap diagnostics do.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance, discarding output until Init is
// called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures logger initialization.
type Options struct {
	Enabled bool       // if false, all logging is discarded
	Level   slog.Level // minimum level to emit when enabled
}

// Init configures L. Call once from main() before any log calls.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level}))
}

func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
func Debug(msg string, args ...any) { L.Debug(msg, args...) }
