package app

import (
	"context"
	"net/http"
	"testing"

	"StorefrontPayments/config"
	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/external/kafka"
	"StorefrontPayments/internal/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapterRegistry_OnlyCredentialedProvidersAreConfigured(t *testing.T) {
	cfg := config.Config{
		Idram: config.IdramConfig{
			FormURL:    "https://banking.idram.am/Payment/GetPayment",
			RecAccount: "110000601",
			SecretKey:  "s3cr3t",
		},
		Telcell: config.TelcellConfig{BaseURL: "https://telcellmoney.am/invoices", ShopID: "shop-1"},
	}

	registry := NewAdapterRegistry(cfg, http.DefaultClient)

	assert.Equal(t, []gateway.Provider{gateway.ProviderIdram}, registry.Configured())
	for _, p := range []gateway.Provider{gateway.ProviderAmeriabank, gateway.ProviderArca, gateway.ProviderTelcell} {
		adapter, err := registry.Get(p)
		require.NoError(t, err)
		assert.False(t, adapter.IsConfigured(), p)
	}
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	publisher, checks, err := NewPublisher(ctx, config.Config{})
	require.NoError(t, err)
	assert.Equal(t, messaging.LogPublisher{}, publisher)
	assert.Empty(t, checks)

	publisher, checks, err = NewPublisher(ctx, config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaPaymentsTopic: "payments.settled"})
	require.NoError(t, err)
	assert.IsType(t, &kafka.Publisher{}, publisher)
	require.Len(t, checks, 1)
	assert.Equal(t, "kafka", checks[0].Name())
	assert.NoError(t, publisher.Close())
}
