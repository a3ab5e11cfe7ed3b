package rabbitmq

import (
	"context"
	"testing"
	"time"

	"StorefrontPayments/internal/messaging"
	"StorefrontPayments/pkg/correlation"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestPublishing(t *testing.T) {
	t.Parallel()

	env := messaging.Envelope{
		EventID:   "evt-1",
		Key:       "ord-1001",
		Type:      "payment.settled",
		Timestamp: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
	ctx := correlation.WithID(context.Background(), "req-7")

	msg := publishing(ctx, env, []byte(`{}`))

	assert.Equal(t, "evt-1", msg.MessageId)
	assert.Equal(t, "payment.settled", msg.Type)
	assert.Equal(t, "req-7", msg.CorrelationId)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, "ord-1001", msg.Headers["key"])
	assert.Equal(t, env.Timestamp, msg.Timestamp)
}

func TestPublishing_WithoutCorrelationID(t *testing.T) {
	t.Parallel()

	msg := publishing(context.Background(), messaging.Envelope{EventID: "evt-2"}, nil)

	assert.Empty(t, msg.CorrelationId)
}
