package paralogmask

import (
	logAdapter "github.com/bft-labs/paralogmask/internal/adapters/log"
	"github.com/bft-labs/paralogmask/internal/adapters/stdio"
	"github.com/bft-labs/paralogmask/internal/ports"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// Option configures optional behavior of Mask.
type Option func(*options)

type options struct {
	chunkSize int
	logger    ports.Logger
}

func defaultOptions() options {
	return options{
		chunkSize: stdio.DefaultChunkSize,
		logger:    logAdapter.NewNoopLogger(),
	}
}

// WithChunkSize sets the largest chunk read at once. Lines longer than size
// are read in pieces; only the first piece of a line receives the prefix.
// Values below 16 are raised to 16.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
