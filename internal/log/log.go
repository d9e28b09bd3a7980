// SPDX-License-Identifier: Unlicense OR MIT

// Package log provides the logger shared by the EGL packages.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once          sync.Once
	defaultLogger *log.Logger
)

// Default returns the process wide logger, writing to stderr.
func Default() *log.Logger {
	once.Do(func() {
		defaultLogger = New(os.Stderr)
	})
	return defaultLogger
}

// New returns a logger with the EGL prefix writing to w.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "egl",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard)
}

// SetLevel parses level and applies it to l. An empty level leaves l
// unchanged.
func SetLevel(l *log.Logger, level string) error {
	if level == "" {
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetLevel(lvl)
	return nil
}
