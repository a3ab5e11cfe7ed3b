package health

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// KafkaChecker reports whether any broker of the settled-events topic accepts connections.
type KafkaChecker struct {
	brokers []string
	dial    func(ctx context.Context, network, address string) (*kafka.Conn, error)
}

func NewKafkaChecker(brokers []string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers, dial: kafka.DialContext}
}

func (c *KafkaChecker) Name() string {
	return "kafka"
}

func (c *KafkaChecker) Check(ctx context.Context) Result {
	if len(c.brokers) == 0 {
		return Result{Status: StatusDown, Message: "no brokers configured"}
	}
	for _, broker := range c.brokers {
		conn, err := c.dial(ctx, "tcp", broker)
		if err == nil {
			_ = conn.Close()
			return Result{Status: StatusUp}
		}
	}
	return Result{Status: StatusDown, Message: "all brokers unreachable"}
}
