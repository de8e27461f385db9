// Package logger adapts common logging libraries to the devidx.Logger
// interface.
//
// The standard library's slog.Logger satisfies devidx.Logger directly and
// needs no adapter; this package covers zap and logrus for applications that
// already carry one of them.
//
// Example with zap:
//
//	zl, _ := zap.NewProduction()
//	ix, err := devidx.New(8, devidx.WithLogger(logger.NewZap(zl)))
//	if err != nil {
//		panic(err)
//	}
package logger
