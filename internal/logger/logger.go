// Package logger holds the process-wide structured logger.
//
// Output goes to stderr as JSON: stdout belongs to command results and, in
// serve mode, to the MCP transport. Until Setup runs, the logger discards.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup installs a stderr JSON logger at info level, or debug when asked.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	mu.Lock()
	global = l
	mu.Unlock()
}

// L returns the current process logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
