package eventjournal

import (
	"log/slog"

	"github.com/ravnholt/eventjournal/internal/logger"
)

type Option func(*Config)

func WithLogger(logger Logger) Option {
	return func(opt *Config) {
		opt.logger = logger
	}
}

func WithNoopLogger() Option {
	return WithLogger(logger.Noop{})
}

func WithDefaultSlog() Option {
	return WithSlog(slog.Default())
}

func WithSlog(log *slog.Logger) Option {
	return WithLogger(
		logger.NewSlog(log),
	)
}

// WithReadBatchSize sets the batch size used by ranged reads: the tag scan of
// the global log and the backward scan of snapshot metadata chains.
func WithReadBatchSize(size int) Option {
	return func(opt *Config) {
		if size > 0 {
			opt.readBatchSize = size
		}
	}
}
