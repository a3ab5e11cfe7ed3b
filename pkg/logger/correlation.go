package logger

import (
	"context"
	"log/slog"

	"StorefrontPayments/pkg/correlation"
)

// CorrelationHandler stamps every record with the correlation_id of the request
// or provider callback being processed. Outbound provider calls and the settled
// publish reuse the same id.
type CorrelationHandler struct {
	inner slog.Handler
}

// NewCorrelationHandler is installed by Setup around the JSON or text handler.
func NewCorrelationHandler(inner slog.Handler) *CorrelationHandler {
	return &CorrelationHandler{inner: inner}
}

// Handle adds correlation_id when the context has one. Startup and shutdown
// records carry none.
func (h *CorrelationHandler) Handle(ctx context.Context, r slog.Record) error {
	if corrID := correlation.FromContext(ctx); corrID != "" {
		r.AddAttrs(slog.String("correlation_id", corrID))
	}
	return h.inner.Handle(ctx, r)
}

func (h *CorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *CorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *CorrelationHandler) WithGroup(name string) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithGroup(name)}
}
