package lang

import (
	"io"
	"os"

	"github.com/ardnew/jan/log"
)

// Option configures parsing and interpretation.
type Option func(*config)

type config struct {
	output   io.Writer
	logger   log.Logger
	maxDepth int
}

func makeConfig(opts ...Option) config {
	cfg := config{output: os.Stdout}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger sets the logger used for trace diagnostics. The zero
// [log.Logger] (the default) discards them.
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithOutput sets the writer that expression statements print to. The
// default is [os.Stdout]; nil discards output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}

		c.output = w
	}
}

// WithMaxDepth limits the depth of nested function calls. Zero, the default,
// means unlimited.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = max(n, 0) }
}
