package anfgo

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	graphCapacity    int
	nodeCapacity     int
}

// Option configures Manager constructor behavior.
type Option func(*options)

// WithGraphCapacity pre-sizes the graph store for at least n graphs.
// Purely a performance hint; the store still grows on demand.
func WithGraphCapacity(n int) Option {
	return func(o *options) {
		o.graphCapacity = n
	}
}

// WithNodeCapacity pre-sizes the node store for at least n nodes.
// Purely a performance hint; the store still grows on demand.
func WithNodeCapacity(n int) Option {
	return func(o *options) {
		o.nodeCapacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &anfgo.BasicMetricsCollector{}
//	mng := anfgo.New(anfgo.WithMetricsCollector(metrics))
//	// ... use mng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Applies: %d, Constants: %d\n", stats.ApplyCount, stats.ConstantCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := anfgo.NewJSONLogger(slog.LevelInfo)
//	mng := anfgo.New(anfgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
