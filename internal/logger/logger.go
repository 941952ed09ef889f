// Package logger provides verbose logging for the scholia CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users understand the retrieval pipeline.
//
// Logger is an instance type: components hold the handle they are given
// instead of reaching for process-wide state, so tests and embedders can
// route or silence output per engine.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes pipeline diagnostics when verbose mode is enabled.
type Logger struct {
	mu      sync.RWMutex
	verbose bool
	output  io.Writer
}

// New creates a logger writing to stderr.
func New(verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		output:  os.Stderr,
	}
}

// SetVerbose enables or disables verbose logging.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func (l *Logger) IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Debug prints a message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.verbose {
		fmt.Fprintf(l.output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.verbose {
		fmt.Fprintf(l.output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func (l *Logger) Info(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.verbose {
		fmt.Fprintf(l.output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func (l *Logger) Warn(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.verbose {
		fmt.Fprintf(l.output, "[WARN] "+format+"\n", args...)
	}
}
