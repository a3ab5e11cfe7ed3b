package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"
	"StorefrontPayments/pkg/metrics"
	"StorefrontPayments/pkg/pointers"

	"golang.org/x/sync/singleflight"
)

type InitiateRequest struct {
	OrderNumber string
	Provider    gateway.Provider
	Locale      string
}

type InitService struct {
	repo     order.OrderRepo
	adapters *gateway.Registry

	publicBaseURL string
	dedup         bool
	group         singleflight.Group
	now           func() time.Time
}

type InitOptions struct {
	// PublicBaseURL is used to build the provider return and webhook URLs.
	PublicBaseURL string
	// Dedup collapses concurrent initiations of the same order and provider.
	Dedup bool
}

func NewInitService(repo order.OrderRepo, adapters *gateway.Registry, opts InitOptions) *InitService {
	return &InitService{
		repo:          repo,
		adapters:      adapters,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		dedup:         opts.Dedup,
		now:           time.Now,
	}
}

// Initiate validates the order and asks the provider for a redirect or a form.
func (s *InitService) Initiate(ctx context.Context, req InitiateRequest) (gateway.Initiation, error) {
	res, err := s.initiate(ctx, req)
	metrics.PaymentInitTotal.WithLabelValues(string(req.Provider), initResult(err)).Inc()
	if err != nil {
		slog.WarnContext(ctx, "Payment initialization failed",
			"provider", req.Provider,
			"order_number", req.OrderNumber,
			"error", err,
		)
		return gateway.Initiation{}, err
	}
	return res, nil
}

func (s *InitService) initiate(ctx context.Context, req InitiateRequest) (gateway.Initiation, error) {
	adapter, err := s.adapters.Get(req.Provider)
	if err != nil {
		return gateway.Initiation{}, err
	}
	if !adapter.IsConfigured() {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrNotConfigured, req.Provider)
	}

	o, err := order.FindByNumber(ctx, s.repo, req.OrderNumber)
	if err != nil {
		return gateway.Initiation{}, err
	}
	if !o.IsPending() {
		return gateway.Initiation{}, fmt.Errorf("%w: order %s is %s", order.ErrNotPending, o.Number, o.PaymentStatus)
	}

	payments, err := s.repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().
		WithOrderIDs(o.ID).
		WithProviders(req.Provider).
		WithStatuses(order.StatusPending).
		Build())
	if err != nil {
		return gateway.Initiation{}, fmt.Errorf("get payments: %w", err)
	}
	if len(payments) == 0 {
		return gateway.Initiation{}, fmt.Errorf("%w: order %s has no pending %s payment", order.ErrPaymentNotFound, o.Number, req.Provider)
	}
	p := payments[0]

	if !o.Total.IsPositive() {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrInvalidAmount, o.Total)
	}
	if !adapter.SupportsCurrency(o.Currency) {
		return gateway.Initiation{}, fmt.Errorf("%w: %s does not accept %s", gateway.ErrUnsupportedCurrency, req.Provider, o.Currency)
	}

	call := func() (gateway.Initiation, error) {
		return s.register(ctx, adapter, o, p, req.Locale)
	}
	if !s.dedup {
		return call()
	}

	v, err, shared := s.group.Do(o.ID+":"+string(req.Provider), func() (any, error) {
		return call()
	})
	if shared {
		slog.InfoContext(ctx, "Concurrent initialization shared", "order_number", o.Number, "provider", req.Provider)
	}
	if err != nil {
		return gateway.Initiation{}, err
	}
	return v.(gateway.Initiation), nil
}

// register performs the single provider call and stores the provider transaction id.
func (s *InitService) register(ctx context.Context, adapter gateway.Adapter, o order.Order, p order.Payment, locale string) (gateway.Initiation, error) {
	provider := adapter.Provider()

	res, err := adapter.BuildInitiation(ctx, gateway.InitiationRequest{
		OrderID:     o.ID,
		OrderNumber: o.Number,
		PaymentID:   p.ID,
		Amount:      o.Total,
		Currency:    o.Currency,
		Locale:      locale,
		ReturnURL:   fmt.Sprintf("%s/callback/%s/return", s.publicBaseURL, provider),
	})
	if err != nil {
		return gateway.Initiation{}, fmt.Errorf("%s initiation: %w", provider, err)
	}

	if res.TransactionID != "" {
		if err := s.repo.SetProviderTransactionID(ctx, p.ID, res.TransactionID); err != nil {
			return gateway.Initiation{}, fmt.Errorf("store provider transaction id: %w", err)
		}
	}

	data, _ := json.Marshal(map[string]string{
		"transaction_id": res.TransactionID,
		"locale":         locale,
	})
	_, err = s.repo.CreatePaymentEvent(ctx, order.NewPaymentEvent{
		OrderID:   o.ID,
		PaymentID: pointers.Ptr(p.ID),
		Provider:  provider,
		Kind:      order.EventInitRequested,
		Data:      data,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		slog.WarnContext(ctx, "Failed to record init event", "order_number", o.Number, "error", err)
	}

	slog.InfoContext(ctx, "Payment initialized",
		"provider", provider,
		"order_number", o.Number,
		"payment_id", p.ID,
		"transaction_id", res.TransactionID,
	)
	return res, nil
}

func initResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, gateway.ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, gateway.ErrProviderRejected):
		return "provider_rejected"
	case errors.Is(err, gateway.ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, order.ErrNotFound), errors.Is(err, order.ErrPaymentNotFound), errors.Is(err, gateway.ErrUnknownProvider):
		return "not_found"
	case errors.Is(err, order.ErrNotPending), errors.Is(err, gateway.ErrInvalidAmount),
		errors.Is(err, gateway.ErrUnsupportedCurrency), errors.Is(err, gateway.ErrInvalidOrder):
		return "invalid"
	default:
		return "error"
	}
}
