package eventjournal

import "context"

// Codec reconstructs payloads from their stored form. Implementations carry a
// static manifest registry built at startup; see the codecs package.
type Codec interface {
	Encode(payload Payload) ([]byte, error)
	Decode(manifest string, b []byte) (Payload, error)
}

type Config struct {
	logger        Logger
	readBatchSize int
}

type Logger interface {
	InfofCtx(ctx context.Context, template string, args ...any)
	ErrorfCtx(ctx context.Context, template string, args ...any)
}

func defaultOptions() *Config {
	return applyOptions(&Config{},
		// add default options here
		WithNoopLogger(),
		WithReadBatchSize(100),
	)
}

func applyOptions(options *Config, opts ...Option) *Config {
	for _, opt := range opts {
		opt(options)
	}

	return options
}
