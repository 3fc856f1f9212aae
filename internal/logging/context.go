package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger attached to ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Component returns a child of the context logger tagged with component,
// without attaching it to the context.
func Component(ctx context.Context, component string) zerolog.Logger {
	return FromContext(ctx).With().Str("component", component).Logger()
}

// WithComponent attaches a child logger tagged with component.
func WithComponent(ctx context.Context, component string) context.Context {
	return WithContext(ctx, Component(ctx, component))
}

// WithSource attaches a child logger tagged with the rule source being
// processed, so parsers and compilers below log which list they work on.
func WithSource(ctx context.Context, name, id string) context.Context {
	logger := FromContext(ctx).With().
		Str("source", name).
		Str("source_id", id).
		Logger()
	return WithContext(ctx, logger)
}
