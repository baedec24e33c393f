package punct

import (
	"log/slog"
	"runtime"
)

// Option configures a Restorer.
type Option func(*config)

type config struct {
	maxSeqLen int
	poolSize  int
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		maxSeqLen: 256,
		poolSize:  runtime.NumCPU(),
		logger:    slog.Default(),
	}
}

// WithMaxSeqLen sets the maximum subword sequence length per inference
// window (default: 256, matching the training-time budget).
func WithMaxSeqLen(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSeqLen = n
		}
	}
}

// WithPoolSize sets the ONNX session pool size (default: runtime.NumCPU()).
func WithPoolSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
