// Package rabbitmq publishes payment events to a durable topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"StorefrontPayments/internal/messaging"
	"StorefrontPayments/pkg/correlation"
	"StorefrontPayments/pkg/health"

	"github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn     *amqp091.Connection
	exchange string
}

var _ messaging.Publisher = (*Publisher)(nil)

// NewPublisher connects and declares the exchange. Messages are routed by envelope type.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Publisher{conn: conn, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx, p.exchange, env.Type, false, false, publishing(ctx, env, body))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to publish message",
			"exchange", p.exchange,
			"key", env.Key,
			"error", err,
		)
		return err
	}

	slog.DebugContext(ctx, "Message published",
		"exchange", p.exchange,
		"key", env.Key,
		"event_id", env.EventID,
	)
	return nil
}

func publishing(ctx context.Context, env messaging.Envelope, body []byte) amqp091.Publishing {
	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    env.EventID,
		Type:         env.Type,
		Timestamp:    env.Timestamp,
		Headers:      amqp091.Table{"key": env.Key},
		Body:         body,
	}
	if corrID := correlation.FromContext(ctx); corrID != "" {
		msg.CorrelationId = corrID
	}
	return msg
}

// Checker reports the connection state. A closed connection is not redialed.
func (p *Publisher) Checker() health.Checker {
	return health.NewCheck("rabbitmq", func(context.Context) health.Result {
		if p.conn.IsClosed() {
			return health.Result{Status: health.StatusDown, Message: "connection closed"}
		}
		return health.Result{Status: health.StatusUp}
	})
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}
