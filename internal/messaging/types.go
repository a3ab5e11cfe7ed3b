package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source types.go -destination mock_types.go -package messaging

// Envelope wraps a message with metadata for tracing and routing.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope creates a new envelope with a generated event ID.
func NewEnvelope(key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher sends messages to a message broker.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// LogPublisher is used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, env Envelope) error {
	slog.InfoContext(ctx, "Message not published, no broker configured",
		"key", env.Key,
		"type", env.Type,
		"event_id", env.EventID,
	)
	return nil
}

func (LogPublisher) Close() error {
	return nil
}

// Fanout delivers every envelope to all publishers. One failing publisher does
// not stop delivery to the rest.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, env Envelope) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, env); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() error {
	var errs []error
	for _, p := range f {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
