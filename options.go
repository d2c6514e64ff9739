package sigui

import "log/slog"

// defaultCapacity is the initial size of the registry and both queues.
const defaultCapacity = 4

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithLogger sets the logger used for frame and dispatch diagnostics.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(ctx *Context) {
		if logger != nil {
			ctx.logger = logger
		}
	}
}

// WithCapacity pre-allocates room for n modules and n queued entries.
func WithCapacity(n int) ContextOption {
	return func(ctx *Context) {
		if n > 0 {
			ctx.capacity = n
		}
	}
}
