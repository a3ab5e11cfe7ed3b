package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"
	"StorefrontPayments/internal/messaging"
	"StorefrontPayments/pkg/metrics"
	"StorefrontPayments/pkg/pointers"

	"github.com/shopspring/decimal"
)

const (
	SettledMessageType = "payment.settled"

	publishTimeout = 5 * time.Second
)

type Callback struct {
	Provider gateway.Provider
	Kind     gateway.CallbackKind
	Params   url.Values
}

type Result struct {
	Disposition gateway.Disposition
	// Order is nil when the callback could not be matched to an order.
	Order *order.Order
	// Status is the order payment status after the callback was handled.
	Status order.Status
	// Outcome is what the provider reported, verified or not.
	Outcome gateway.Outcome
	Ack     gateway.Ack
}

// SettledMessage is published once per order, by the callback that settled it.
type SettledMessage struct {
	OrderID       string           `json:"order_id"`
	OrderNumber   string           `json:"order_number"`
	PaymentID     string           `json:"payment_id"`
	Provider      gateway.Provider `json:"provider"`
	Status        order.Status     `json:"status"`
	Amount        string           `json:"amount"`
	Currency      string           `json:"currency"`
	TransactionID string           `json:"transaction_id,omitempty"`
	SettledAt     time.Time        `json:"settled_at"`
}

type ReconcileService struct {
	repo      order.OrderRepo
	adapters  *gateway.Registry
	publisher messaging.Publisher
	now       func() time.Time
}

func NewReconcileService(repo order.OrderRepo, adapters *gateway.Registry, publisher messaging.Publisher) *ReconcileService {
	if publisher == nil {
		publisher = messaging.LogPublisher{}
	}
	return &ReconcileService{
		repo:      repo,
		adapters:  adapters,
		publisher: publisher,
		now:       time.Now,
	}
}

// HandleCallback applies a provider callback to the order it refers to.
// Only internal failures are returned as errors; anything the provider sent
// wrong ends in a disposition with the matching acknowledgement.
func (s *ReconcileService) HandleCallback(ctx context.Context, cb Callback) (Result, error) {
	adapter, err := s.adapters.Get(cb.Provider)
	if err != nil {
		return Result{}, err
	}

	res, err := s.handle(ctx, adapter, cb)
	if err != nil {
		metrics.PaymentCallbacksTotal.WithLabelValues(string(cb.Provider), string(cb.Kind), "error").Inc()
		return Result{}, err
	}

	res.Ack = adapter.Acknowledge(cb.Kind, res.Disposition)
	metrics.PaymentCallbacksTotal.WithLabelValues(string(cb.Provider), string(cb.Kind), string(res.Disposition)).Inc()
	return res, nil
}

func (s *ReconcileService) handle(ctx context.Context, adapter gateway.Adapter, cb Callback) (Result, error) {
	if !adapter.IsConfigured() {
		slog.ErrorContext(ctx, "Callback for unconfigured provider", "provider", cb.Provider, "kind", cb.Kind)
		return Result{Disposition: gateway.DispositionIgnored}, nil
	}

	n, err := adapter.ParseCallback(cb.Kind, cb.Params)
	if err != nil {
		return s.parseFailure(ctx, cb, err)
	}

	target, err := resolve(ctx, s.repo, adapter, n)
	if errors.Is(err, order.ErrNotFound) {
		slog.WarnContext(ctx, "Callback for unknown order",
			"provider", cb.Provider,
			"kind", cb.Kind,
			"order_ref", n.OrderRef,
			"transaction_id", n.TransactionID,
		)
		return Result{Disposition: declined(n.Precheck, gateway.DispositionIgnored), Outcome: n.Outcome}, nil
	}
	if err != nil {
		return Result{}, err
	}
	o := target.order

	if n.Precheck {
		return s.precheck(ctx, adapter.Provider(), n, o)
	}

	if n.Advisory {
		d := gateway.DispositionPending
		if !o.IsPending() {
			d = gateway.DispositionAlreadySettled
		}
		return result(d, o, n.Outcome), nil
	}

	v, err := adapter.VerifyCallback(ctx, n)
	if errors.Is(err, gateway.ErrAuthenticity) {
		slog.WarnContext(ctx, "Callback failed verification",
			"security", true,
			"provider", cb.Provider,
			"kind", cb.Kind,
			"order_number", o.Number,
			"error", err,
		)
		return result(gateway.DispositionRejected, o, n.Outcome), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("verify %s callback: %w", cb.Provider, err)
	}

	if v.Outcome == gateway.OutcomePaid && !matchesOrder(o, v.Amount, v.Currency) {
		slog.WarnContext(ctx, "Paid amount does not match order",
			"security", true,
			"provider", cb.Provider,
			"order_number", o.Number,
			"expected", o.Total.String()+" "+o.Currency,
			"got", amountString(v.Amount)+" "+v.Currency,
		)
		return result(gateway.DispositionRejected, o, v.Outcome), nil
	}

	if !o.IsPending() {
		return result(gateway.DispositionAlreadySettled, o, v.Outcome), nil
	}

	to, decided := order.StatusFromOutcome(v.Outcome)
	if !decided {
		return result(gateway.DispositionPending, o, v.Outcome), nil
	}

	p, err := s.pendingPayment(ctx, adapter.Provider(), o, target.payment, v.TransactionID)
	if err != nil {
		return Result{}, err
	}
	if p == nil {
		slog.WarnContext(ctx, "No pending payment for callback", "provider", cb.Provider, "order_number", o.Number)
		return result(gateway.DispositionIgnored, o, v.Outcome), nil
	}

	return s.settle(ctx, o, *p, to, v)
}

func (s *ReconcileService) parseFailure(ctx context.Context, cb Callback, err error) (Result, error) {
	precheck := cb.Kind == gateway.CallbackPrecheck

	switch {
	case errors.Is(err, gateway.ErrUnsupportedCallback):
		return Result{}, err
	case errors.Is(err, gateway.ErrAuthenticity):
		slog.WarnContext(ctx, "Callback rejected", "security", true, "provider", cb.Provider, "kind", cb.Kind, "error", err)
		return Result{Disposition: declined(precheck, gateway.DispositionRejected)}, nil
	default:
		slog.WarnContext(ctx, "Malformed callback", "provider", cb.Provider, "kind", cb.Kind, "error", err)
		return Result{Disposition: declined(precheck, gateway.DispositionIgnored)}, nil
	}
}

// precheck answers whether the order may still be paid. It never writes.
func (s *ReconcileService) precheck(ctx context.Context, provider gateway.Provider, n gateway.Notification, o order.Order) (Result, error) {
	decline := func(reason string) (Result, error) {
		slog.InfoContext(ctx, "Precheck declined", "provider", provider, "order_number", o.Number, "reason", reason)
		return result(gateway.DispositionPrecheckDeclined, o, n.Outcome), nil
	}

	if !o.IsPending() {
		return decline("order is " + string(o.PaymentStatus))
	}
	if !matchesOrder(o, n.Amount, n.Currency) {
		return decline("amount mismatch")
	}

	payments, err := s.repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().
		WithOrderIDs(o.ID).
		WithProviders(provider).
		WithStatuses(order.StatusPending).
		Build())
	if err != nil {
		return Result{}, fmt.Errorf("get payments: %w", err)
	}
	if len(payments) == 0 {
		return decline("no pending payment")
	}

	return result(gateway.DispositionPrecheckAccepted, o, n.Outcome), nil
}

func (s *ReconcileService) pendingPayment(ctx context.Context, provider gateway.Provider, o order.Order, known *order.Payment, txID string) (*order.Payment, error) {
	if known != nil {
		if known.Status != order.StatusPending {
			return nil, nil
		}
		return known, nil
	}

	payments, err := s.repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().
		WithOrderIDs(o.ID).
		WithProviders(provider).
		WithStatuses(order.StatusPending).
		Build())
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	if len(payments) == 0 {
		return nil, nil
	}

	for i := range payments {
		if txID != "" && payments[i].ProviderTransactionID != nil && *payments[i].ProviderTransactionID == txID {
			return &payments[i], nil
		}
	}
	return &payments[0], nil
}

// settle moves payment and order out of pending in one transaction. Both
// updates are guarded by the pending status, so only one concurrent callback
// can win; the others roll back and report the stored status.
func (s *ReconcileService) settle(ctx context.Context, o order.Order, p order.Payment, to order.Status, v gateway.Verification) (Result, error) {
	settledAt := s.now().UTC()

	err := s.repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		if v.TransactionID != "" && p.ProviderTransactionID == nil {
			if err := tx.SetProviderTransactionID(ctx, p.ID, v.TransactionID); err != nil {
				return fmt.Errorf("set provider transaction id: %w", err)
			}
		}

		ok, err := tx.TransitionPayment(ctx, p.ID, to)
		if err != nil {
			return fmt.Errorf("transition payment: %w", err)
		}
		if !ok {
			return errLostRace
		}

		ok, err = tx.TransitionOrder(ctx, o.ID, to)
		if err != nil {
			return fmt.Errorf("transition order: %w", err)
		}
		if !ok {
			return errLostRace
		}

		data, err := json.Marshal(map[string]string{
			"status":         string(to),
			"amount":         amountString(v.Amount),
			"currency":       v.Currency,
			"transaction_id": v.TransactionID,
		})
		if err != nil {
			return err
		}
		_, err = tx.CreatePaymentEvent(ctx, order.NewPaymentEvent{
			OrderID:   o.ID,
			PaymentID: pointers.Ptr(p.ID),
			Provider:  p.Provider,
			Kind:      order.EventPaymentSettled,
			Data:      data,
			CreatedAt: settledAt,
		})
		if err != nil {
			return fmt.Errorf("create payment event: %w", err)
		}
		return nil
	})

	if errors.Is(err, errLostRace) || errors.Is(err, order.ErrPaymentNotFound) {
		fresh, ferr := order.FindByID(ctx, s.repo, o.ID)
		if ferr != nil {
			return Result{}, ferr
		}
		slog.InfoContext(ctx, "Payment settled concurrently", "order_number", o.Number, "status", fresh.PaymentStatus)
		return result(gateway.DispositionAlreadySettled, fresh, v.Outcome), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("settle order %s: %w", o.Number, err)
	}

	o.PaymentStatus = to
	o.UpdatedAt = settledAt
	slog.InfoContext(ctx, "Payment settled",
		"provider", p.Provider,
		"order_number", o.Number,
		"payment_id", p.ID,
		"status", to,
	)

	s.publishSettled(ctx, SettledMessage{
		OrderID:       o.ID,
		OrderNumber:   o.Number,
		PaymentID:     p.ID,
		Provider:      p.Provider,
		Status:        to,
		Amount:        o.Total.String(),
		Currency:      o.Currency,
		TransactionID: v.TransactionID,
		SettledAt:     settledAt,
	})

	return result(gateway.DispositionSettled, o, v.Outcome), nil
}

// publishSettled is best effort. The provider must not see a failure once the
// settlement is committed.
func (s *ReconcileService) publishSettled(ctx context.Context, msg SettledMessage) {
	envelope, err := messaging.NewEnvelope(msg.OrderID, SettledMessageType, msg)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build settled message", "order_number", msg.OrderNumber, "error", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(pubCtx, envelope); err != nil {
		slog.ErrorContext(ctx, "Failed to publish settled message",
			"order_number", msg.OrderNumber,
			"event_id", envelope.EventID,
			"error", err,
		)
	}
}

func result(d gateway.Disposition, o order.Order, outcome gateway.Outcome) Result {
	return Result{Disposition: d, Order: &o, Status: o.PaymentStatus, Outcome: outcome}
}

func declined(precheck bool, d gateway.Disposition) gateway.Disposition {
	if precheck {
		return gateway.DispositionPrecheckDeclined
	}
	return d
}

// matchesOrder compares a reported amount and currency with the order.
// Missing values are not compared.
func matchesOrder(o order.Order, amount *decimal.Decimal, currency string) bool {
	if amount != nil && !amount.Equal(o.Total) {
		return false
	}
	if currency != "" && !strings.EqualFold(currency, o.Currency) {
		return false
	}
	return true
}

func amountString(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.String()
}
