package logger

import (
	"github.com/sirupsen/logrus"

	"devidx"
)

// Logrus wraps a logrus.Logger to implement devidx.Logger.
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus creates a devidx.Logger from a logrus.Logger.
func NewLogrus(ll *logrus.Logger) devidx.Logger {
	return &Logrus{logger: ll}
}

// Debug logs a debug message with key-value pairs.
func (l *Logrus) Debug(msg string, args ...any) {
	l.logger.WithFields(fields(args)).Debug(msg)
}

// Info logs an info message with key-value pairs.
func (l *Logrus) Info(msg string, args ...any) {
	l.logger.WithFields(fields(args)).Info(msg)
}

// Warn logs a warning message with key-value pairs.
func (l *Logrus) Warn(msg string, args ...any) {
	l.logger.WithFields(fields(args)).Warn(msg)
}

// Error logs an error message with key-value pairs.
func (l *Logrus) Error(msg string, args ...any) {
	l.logger.WithFields(fields(args)).Error(msg)
}

// fields converts slog-style alternating key/value args to logrus fields.
// A trailing key without a value is dropped, as are non-string keys.
func fields(args []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok {
			f[k] = args[i+1]
		}
	}
	return f
}
