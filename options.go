package treepress

import (
	"go.uber.org/zap"

	"github.com/treepress/treepress/internal/codec"
	"github.com/treepress/treepress/internal/stats"
)

// Option configures an Archiver.
type Option interface {
	apply(*options)
}

// options holds the archiver configuration.
type options struct {
	algorithm Algorithm
	suffix    string
	stats     stats.Collector
	logger    *zap.Logger
	progress  ProgressFunc
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		algorithm: codec.Default,
		suffix:    DefaultSuffix,
		stats:     stats.NewNoop(),
		logger:    zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithAlgorithm sets the compression algorithm.
// If not set, gzip is used.
func WithAlgorithm(a Algorithm) Option {
	return optionFunc(func(o *options) {
		o.algorithm = a
	})
}

// WithSuffix sets the marker suffix appended to compressed files.
// If not set, DefaultSuffix is used.
func WithSuffix(suffix string) Option {
	return optionFunc(func(o *options) {
		o.suffix = suffix
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}

// WithProgress sets a callback invoked after every file visited during
// tree operations.
func WithProgress(f ProgressFunc) Option {
	return optionFunc(func(o *options) {
		o.progress = f
	})
}
