// Package logging defines the structured-logging interface used across the
// client. The rest of the code depends on Logger, not on a concrete backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// alternating key/value pairs:
//
//	log.Warn(ctx, "ratings unavailable", "food_id", id, "error", err)
type Logger interface {
	// Debug logs fine-grained diagnostics, normally filtered out.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
