package app

import (
	"context"
	"net/http"

	"StorefrontPayments/config"
	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/external/ameriabank"
	"StorefrontPayments/internal/external/arca"
	"StorefrontPayments/internal/external/idram"
	"StorefrontPayments/internal/external/kafka"
	"StorefrontPayments/internal/external/opensearch"
	"StorefrontPayments/internal/external/rabbitmq"
	"StorefrontPayments/internal/external/telcell"
	"StorefrontPayments/internal/messaging"
	"StorefrontPayments/pkg/health"
)

// NewAdapterRegistry registers every provider. Providers with missing
// credentials stay registered and report themselves as not configured.
func NewAdapterRegistry(cfg config.Config, httpClient *http.Client) *gateway.Registry {
	return gateway.NewRegistry(
		ameriabank.New(ameriabank.Config{
			BaseURL:  cfg.Ameriabank.BaseURL,
			ClientID: cfg.Ameriabank.ClientID,
			Username: cfg.Ameriabank.Username,
			Password: cfg.Ameriabank.Password,
		}, httpClient),
		arca.New(arca.Config{
			BaseURL:  cfg.Arca.BaseURL,
			Username: cfg.Arca.Username,
			Password: cfg.Arca.Password,
		}, httpClient),
		idram.New(idram.Config{
			FormURL:    cfg.Idram.FormURL,
			RecAccount: cfg.Idram.RecAccount,
			SecretKey:  cfg.Idram.SecretKey,
			Email:      cfg.Idram.Email,
		}),
		telcell.New(telcell.Config{
			BaseURL:   cfg.Telcell.BaseURL,
			ShopID:    cfg.Telcell.ShopID,
			ShopKey:   cfg.Telcell.ShopKey,
			ValidDays: cfg.Telcell.ValidDays,
		}),
	)
}

// NewPublisher builds the settled-event publisher: one broker (Kafka, else
// RabbitMQ, else a log line) plus the OpenSearch settlement index when configured.
// Every returned check is optional for readiness.
func NewPublisher(ctx context.Context, cfg config.Config) (messaging.Publisher, []health.Checker, error) {
	var (
		publishers messaging.Fanout
		checks     []health.Checker
	)

	switch {
	case len(cfg.KafkaBrokers) > 0:
		publishers = append(publishers, kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaPaymentsTopic))
		checks = append(checks, health.NewKafkaChecker(cfg.KafkaBrokers))
	case cfg.AMQPURL != "":
		p, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, nil, err
		}
		publishers = append(publishers, p)
		checks = append(checks, p.Checker())
	default:
		publishers = append(publishers, messaging.LogPublisher{})
	}

	if len(cfg.OpenSearchURLs) > 0 {
		idx, err := opensearch.NewSettlementIndex(ctx, cfg.OpenSearchURLs, cfg.OpenSearchSettlementIndex)
		if err != nil {
			_ = publishers.Close()
			return nil, nil, err
		}
		publishers = append(publishers, idx)
		checks = append(checks, idx.Checker())
	}

	if len(publishers) == 1 {
		return publishers[0], checks, nil
	}
	return publishers, checks, nil
}
