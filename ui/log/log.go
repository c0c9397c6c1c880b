// Package log contains shared logging code
package log

import "time"

type (
	// Log writes timestamped messages to the console.
	Log struct {
		console Console
		// TimeFunc is a function which should supply the current time since the unix epoch.
		// This is used for logging message timestamps
		TimeFunc func() int64
		// Verbose enables Debug messages.
		Verbose bool
	}

	// Console is where messages are written, such as the browser console.
	Console interface {
		Log(text string)
		Warn(text string)
		Error(text string)
	}
)

// New creates a new log.
func New(console Console, timeFunc func() int64) *Log {
	l := Log{
		console:  console,
		TimeFunc: timeFunc,
	}
	return &l
}

// Debug logs a message only when the log is verbose.
func (l *Log) Debug(text string) {
	if !l.Verbose {
		return
	}
	l.console.Log(l.format("debug", text))
}

// Info logs an info-styled message.
func (l *Log) Info(text string) {
	l.console.Log(l.format("info", text))
}

// Warning logs an warning-styled message.
func (l *Log) Warning(text string) {
	l.console.Warn(l.format("warning", text))
}

// Error logs an error-styled message.
func (l *Log) Error(text string) {
	l.console.Error(l.format("error", text))
}

// format prefixes the text with the time and class of the message.
func (l *Log) format(class, text string) string {
	return FormatTime(l.TimeFunc()) + " " + class + " : " + text
}

// FormatTime formats a datetime to HH:MM:SS.
func FormatTime(utcSeconds int64) string {
	t := time.Unix(utcSeconds, 0).UTC()
	return t.Format("15:04:05")
}
