package logger

import (
	"go.uber.org/zap"

	"devidx"
)

// Zap wraps a zap.Logger to implement devidx.Logger.
type Zap struct {
	sugar *zap.SugaredLogger
}

// NewZap creates a devidx.Logger from a zap.Logger.
func NewZap(zl *zap.Logger) devidx.Logger {
	return &Zap{sugar: zl.Sugar()}
}

// Debug logs a debug message with key-value pairs.
func (z *Zap) Debug(msg string, args ...any) {
	z.sugar.Debugw(msg, args...)
}

// Info logs an info message with key-value pairs.
func (z *Zap) Info(msg string, args ...any) {
	z.sugar.Infow(msg, args...)
}

// Warn logs a warning message with key-value pairs.
func (z *Zap) Warn(msg string, args ...any) {
	z.sugar.Warnw(msg, args...)
}

// Error logs an error message with key-value pairs.
func (z *Zap) Error(msg string, args ...any) {
	z.sugar.Errorw(msg, args...)
}
