// Package correlation carries a request id from the inbound HTTP call through
// provider requests and published events.
package correlation

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

const (
	HeaderName      = "X-Correlation-ID"
	KafkaHeaderName = "X-Correlation-ID"
)

// Callers and providers may send their own id. Anything else is replaced.
var validID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

type contextKey struct{}

func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func NewID() string {
	return uuid.New().String()
}

// Accept returns incoming when it is a usable id, and a fresh one otherwise.
func Accept(incoming string) string {
	if validID.MatchString(incoming) {
		return incoming
	}
	return NewID()
}
