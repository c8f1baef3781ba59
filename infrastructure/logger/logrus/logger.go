// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Maps the core Logger field maps onto logrus structured fields

package logrus

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Logger implements interfaces.Logger on top of a logrus entry
type Logger struct {
	base *log.Logger
}

// NewLogger creates a logger writing to stdout.
// level is any logrus level name; unknown names fall back to info.
// format is "json" or "text".
func NewLogger(level, format string) *Logger {
	return NewLoggerWithOutput(os.Stdout, level, format)
}

// NewLoggerWithOutput creates a logger writing to w
func NewLoggerWithOutput(w io.Writer, level, format string) *Logger {
	base := log.New()
	base.SetOutput(w)

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	base.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		base.SetFormatter(&log.JSONFormatter{})
	} else {
		base.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	return &Logger{base: base}
}

// Level returns the active log level
func (l *Logger) Level() log.Level {
	return l.base.GetLevel()
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *Logger) entry(fields map[string]interface{}) *log.Entry {
	if len(fields) == 0 {
		return log.NewEntry(l.base)
	}
	return l.base.WithFields(log.Fields(fields))
}
