package telcell

import (
	"context"
	"net/url"
	"testing"

	"StorefrontPayments/internal/domain/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() *Client {
	return New(Config{
		BaseURL:   "https://telcellmoney.am/invoices",
		ShopID:    "shop-1",
		ShopKey:   "shopkey",
		ValidDays: 1,
	})
}

func result() url.Values {
	return url.Values{
		"invoice":    {"INV-1"},
		"issuer_id":  {"MTAwMQ=="},
		"payment_id": {"P-9"},
		"currency":   {"֏"},
		"sum":        {"5000"},
		"time":       {"2026-10-16 12:00:00"},
		"status":     {"PAID"},
		"checksum":   {"dbf819e814acb42808fbc9cbfc72f263"},
	}
}

func TestClient_BuildInitiation(t *testing.T) {
	client := newClient()

	t.Run("signs the invoice redirect", func(t *testing.T) {
		res, err := client.BuildInitiation(context.Background(), gateway.InitiationRequest{
			OrderNumber: "1001",
			Amount:      decimal.RequireFromString("5000.00"),
			Currency:    "AMD",
		})
		require.NoError(t, err)
		assert.Empty(t, res.TransactionID)

		u, err := url.Parse(res.RedirectURL)
		require.NoError(t, err)
		assert.Equal(t, "telcellmoney.am", u.Host)

		q := u.Query()
		assert.Equal(t, "PostInvoice", q.Get("action"))
		assert.Equal(t, "shop-1", q.Get("issuer"))
		assert.Equal(t, "֏", q.Get("currency"))
		assert.Equal(t, "5000", q.Get("price"))
		assert.Equal(t, "T3JkZXIgIzEwMDE=", q.Get("product"))
		assert.Equal(t, "MTAwMQ==", q.Get("issuer_id"))
		assert.Equal(t, "1", q.Get("valid_days"))
		assert.Equal(t, "a8d54eae32b86aee57b8a444f1476eff", q.Get("security_code"))
	})

	t.Run("accepts only dram", func(t *testing.T) {
		_, err := client.BuildInitiation(context.Background(), gateway.InitiationRequest{
			OrderNumber: "1001",
			Amount:      decimal.NewFromInt(10),
			Currency:    "EUR",
		})

		assert.ErrorIs(t, err, gateway.ErrUnsupportedCurrency)
	})
}

func TestClient_ParseCallback(t *testing.T) {
	client := newClient()

	testCases := []struct {
		status   string
		expected gateway.Outcome
	}{
		{status: "PAID", expected: gateway.OutcomePaid},
		{status: "REJECTED", expected: gateway.OutcomeFailed},
		{status: "EXPIRED", expected: gateway.OutcomeCancelled},
		{status: "CANCELLED", expected: gateway.OutcomeCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			p := result()
			p.Set("status", tc.status)

			n, err := client.ParseCallback(gateway.CallbackWebhook, p)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, n.Outcome)
			assert.Equal(t, "MTAwMQ==", n.OrderRef)
			assert.Equal(t, "INV-1", n.TransactionID)
			assert.Equal(t, "AMD", n.Currency)
		})
	}

	t.Run("unknown status is malformed", func(t *testing.T) {
		p := result()
		p.Set("status", "WHATEVER")

		_, err := client.ParseCallback(gateway.CallbackWebhook, p)

		assert.ErrorIs(t, err, gateway.ErrMalformedCallback)
	})

	t.Run("missing checksum is malformed", func(t *testing.T) {
		p := result()
		p.Del("checksum")

		_, err := client.ParseCallback(gateway.CallbackWebhook, p)

		assert.ErrorIs(t, err, gateway.ErrMalformedCallback)
	})

	t.Run("return is advisory", func(t *testing.T) {
		n, err := client.ParseCallback(gateway.CallbackReturn, url.Values{"order": {"1001"}})

		require.NoError(t, err)
		assert.True(t, n.Advisory)
	})

	t.Run("precheck is not supported", func(t *testing.T) {
		_, err := client.ParseCallback(gateway.CallbackPrecheck, url.Values{})

		assert.ErrorIs(t, err, gateway.ErrUnsupportedCallback)
	})
}

func TestClient_VerifyCallback(t *testing.T) {
	client := newClient()

	t.Run("valid checksum", func(t *testing.T) {
		n, err := client.ParseCallback(gateway.CallbackWebhook, result())
		require.NoError(t, err)

		v, err := client.VerifyCallback(context.Background(), n)

		require.NoError(t, err)
		assert.Equal(t, gateway.OutcomePaid, v.Outcome)
		require.NotNil(t, v.Amount)
		assert.True(t, decimal.NewFromInt(5000).Equal(*v.Amount))
	})

	t.Run("flipped status fails", func(t *testing.T) {
		p := result()
		p.Set("status", "REJECTED")
		n, err := client.ParseCallback(gateway.CallbackWebhook, p)
		require.NoError(t, err)

		_, err = client.VerifyCallback(context.Background(), n)

		assert.ErrorIs(t, err, gateway.ErrAuthenticity)
	})
}

func TestClient_Acknowledge(t *testing.T) {
	ack := newClient().Acknowledge(gateway.CallbackWebhook, gateway.DispositionRejected)

	assert.Equal(t, 200, ack.Status)
	assert.Empty(t, ack.Body)
}
