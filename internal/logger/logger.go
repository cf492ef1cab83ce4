// SPDX-License-Identifier: MIT

// Package logger holds the process-wide structured logger used by the CLI.
// Library packages (matrix, compare) never log; only the driver does.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Config selects the destination and verbosity of the process logger.
type Config struct {
	Writer io.Writer // defaults to os.Stderr
	Debug  bool      // debug level plus source locations
	JSON   bool      // JSON handler instead of text
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a logger built from cfg and returns a function restoring the
// discard logger. It is safe to call more than once; the last call wins.
func Setup(cfg Config) func() {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	L().Debug("logger.initialized", "debug", cfg.Debug, "json", cfg.JSON)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

// L returns the current process logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
