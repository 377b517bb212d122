package native

import (
	"log/slog"

	"github.com/gogpu/glue/internal/intern"
)

// Option configures a Runtime during creation.
type Option func(*options)

type options struct {
	shardCapacity int
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		shardCapacity: intern.DefaultShardCapacity,
	}
}

// WithShardCapacity sets the initial size hint of each interning shard.
// Values <= 0 select the default.
func WithShardCapacity(n int) Option {
	return func(o *options) {
		o.shardCapacity = n
	}
}

// WithLogger gives the runtime its own logger instead of glue.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
