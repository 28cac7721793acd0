// Package logger provides leveled, printf-style logging for fbgraph.
//
// Debug output is suppressed unless verbose mode is enabled, which the CLI
// does through its --verbose flag.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	mu      sync.RWMutex
	verbose bool
	base    = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, debug bool) hclog.Logger {
	level := hclog.Info
	if debug {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "fbgraph",
		Level:  level,
		Output: w,
	})
}

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()

	verbose = v
	if v {
		base.SetLevel(hclog.Debug)
	} else {
		base.SetLevel(hclog.Info)
	}
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(w, verbose)
}

func current() hclog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug logs a message that is only shown in verbose mode.
func Debug(format string, args ...any) {
	current().Debug(fmt.Sprintf(format, args...))
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	current().Warn(fmt.Sprintf(format, args...))
}
