// Package logtest implements Loggers for tests.
package logtest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/circle-canvas/server/log"
)

// DiscardLogger is a Logger that logs nothing.
var DiscardLogger log.Logger = discardLogger{}

// discardLogger is more simple than using the standard log.Logger:New() with the io.Discard writer.
type discardLogger struct{}

// Printf implements the log.Logger interface
func (discardLogger) Printf(format string, v ...interface{}) {
	// NOOP
}

// Logger records each message so tests can read them later.
type Logger struct {
	mu    sync.RWMutex
	lines []string
}

var _ log.Logger = new(Logger)

// NewLogger creates a Logger.
func NewLogger() *Logger {
	return new(Logger)
}

// Printf implements the log.Logger interface
func (l *Logger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

// Lines returns a copy of the recorded messages.
func (l *Logger) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lines := make([]string, len(l.lines))
	copy(lines, l.lines)
	return lines
}

// String returns the recorded messages, one per line.
func (l *Logger) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Contains reports whether any message contains the text.
func (l *Logger) Contains(text string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, text) {
			return true
		}
	}
	return false
}

// Empty returns if nothing has been logged.
func (l *Logger) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lines) == 0
}
