package devidx

// Options configures an Index beyond its order.
type Options struct {
	logger        Logger
	findCacheSize int // entries kept by the Find cache; 0 disables it
}

// defaultOptions returns the configuration New starts from: discarded
// diagnostics and a DefaultFindCacheSize find cache.
func defaultOptions() Options {
	return Options{
		logger:        DiscardLogger{},
		findCacheSize: DefaultFindCacheSize,
	}
}

// Option configures an Index using the functional options pattern.
type Option func(*Options)

// WithLogger routes the index's diagnostics to l. The standard library's
// *slog.Logger satisfies Logger directly.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}

// WithFindCache sets how many recent lookups Find keeps in its read-through
// cache. Sizes below MinFindCacheSize are raised to it; zero (or less)
// disables the cache entirely.
func WithFindCache(entries int) Option {
	return func(opts *Options) {
		opts.findCacheSize = entries
	}
}
