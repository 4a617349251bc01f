// Package logger provides leveled diagnostics for the inlay CLI.
// Debug and Info messages are printed only in verbose mode; warnings and
// errors are always printed. Output goes to stderr unless redirected.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr

	debugPrefix = color.New(color.FgHiBlack).Sprint("[DEBUG]")
	infoPrefix  = color.New(color.FgCyan).Sprint("[INFO]")
	warnPrefix  = color.New(color.FgYellow, color.Bold).Sprint("[WARN]")
	errorPrefix = color.New(color.FgRed, color.Bold).Sprint("[ERROR]")
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetColor forces colored prefixes on or off.
func SetColor(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	color.NoColor = !enabled
	debugPrefix = color.New(color.FgHiBlack).Sprint("[DEBUG]")
	infoPrefix = color.New(color.FgCyan).Sprint("[INFO]")
	warnPrefix = color.New(color.FgYellow, color.Bold).Sprint("[WARN]")
	errorPrefix = color.New(color.FgRed, color.Bold).Sprint("[ERROR]")
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write(debugPrefix, format, args...)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write(infoPrefix, format, args...)
	}
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write(warnPrefix, format, args...)
}

// Error prints an error.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write(errorPrefix, format, args...)
}

func write(prefix, format string, args ...any) {
	_, _ = fmt.Fprintf(output, prefix+" "+format+"\n", args...)
}
