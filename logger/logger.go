// Package logger provides the prefixed, colour-coded loggers each component writes through.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
)

const (
	errorColor = "\033[31m"
	infoColor  = "\033[32m"
	debugColor = "\033[90m"
	colorReset = "\033[0m"
)

// ErrNilWriter is returned when a logger is created without an output.
var ErrNilWriter = errors.New("logger output must not be nil")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	out   *log.Logger
	tag   string
	debug atomic.Bool
}

// New creates a logger whose prefix is printed in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		out: log.New(w, "", log.LstdFlags),
		tag: fmt.Sprintf("%s[%s]%s", color, prefix, colorReset),
	}, nil
}

// SetDebug toggles Debug output.
func (l *Logger) SetDebug(enabled bool) {
	l.debug.Store(enabled)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(infoColor, "INFO", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print(errorColor, "ERROR", msg)
}

// Debug logs a message only when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if l.debug.Load() {
		l.print(debugColor, "DEBUG", msg)
	}
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s %s[%s]%s %s", l.tag, color, level, colorReset, msg)
}
