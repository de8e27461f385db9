package devidx

// Logger carries the index's diagnostics. The method set matches log/slog,
// so a *slog.Logger can be passed to WithLogger as-is; the logger package
// has adapters for zap and logrus.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DiscardLogger is the default Logger; every call is a no-op.
type DiscardLogger struct{}

func (DiscardLogger) Debug(string, ...any) {}

func (DiscardLogger) Info(string, ...any) {}

func (DiscardLogger) Warn(string, ...any) {}

func (DiscardLogger) Error(string, ...any) {}
