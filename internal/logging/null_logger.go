package logging

import "github.com/vvka-141/envscan/pkg/envscan"

// NullLogger is a no-op logger that discards all log messages.
// Useful for testing and when logging is not desired.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Error(format string, args ...interface{})   {}

var _ envscan.Logger = (*NullLogger)(nil)
