package payment

import (
	"context"
	"maps"
	"slices"
	"sync"

	"StorefrontPayments/internal/domain/order"
	"StorefrontPayments/internal/messaging"

	"github.com/google/uuid"
)

// memStore is an in-memory order.OrderRepo. Transactions are serialized and
// applied on commit, which mirrors row locks held until commit.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data memData
}

type memData struct {
	orders   map[string]order.Order
	payments map[string]order.Payment
	events   []order.PaymentEvent
}

func newMemStore(orders []order.Order, payments []order.Payment) *memStore {
	s := &memStore{data: memData{
		orders:   map[string]order.Order{},
		payments: map[string]order.Payment{},
	}}
	for _, o := range orders {
		s.data.orders[o.ID] = o
	}
	for _, p := range payments {
		s.data.payments[p.ID] = p
	}
	return s
}

func (d memData) clone() memData {
	return memData{
		orders:   maps.Clone(d.orders),
		payments: maps.Clone(d.payments),
		events:   slices.Clone(d.events),
	}
}

func (s *memStore) snapshot() memData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.clone()
}

func (s *memStore) order(id string) order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.orders[id]
}

func (s *memStore) payment(id string) order.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.payments[id]
}

func (s *memStore) eventsOf(kind order.EventKind) []order.PaymentEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []order.PaymentEvent
	for _, e := range s.data.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) InTransaction(_ context.Context, fn func(repo order.TxOrderRepo) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	staged := s.data.clone()
	s.mu.Unlock()

	if err := fn(&memTx{data: &staged}); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = staged
	s.mu.Unlock()
	return nil
}

func (s *memStore) locked(fn func(tx *memTx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&memTx{data: &s.data})
}

func (s *memStore) GetOrders(ctx context.Context, q *order.OrdersQuery) (out []order.Order, err error) {
	s.locked(func(tx *memTx) { out, err = tx.GetOrders(ctx, q) })
	return
}

func (s *memStore) GetPayments(ctx context.Context, q *order.PaymentsQuery) (out []order.Payment, err error) {
	s.locked(func(tx *memTx) { out, err = tx.GetPayments(ctx, q) })
	return
}

func (s *memStore) SetProviderTransactionID(ctx context.Context, paymentID, transactionID string) (err error) {
	s.locked(func(tx *memTx) { err = tx.SetProviderTransactionID(ctx, paymentID, transactionID) })
	return
}

func (s *memStore) TransitionPayment(ctx context.Context, paymentID string, to order.Status) (ok bool, err error) {
	s.locked(func(tx *memTx) { ok, err = tx.TransitionPayment(ctx, paymentID, to) })
	return
}

func (s *memStore) TransitionOrder(ctx context.Context, orderID string, to order.Status) (ok bool, err error) {
	s.locked(func(tx *memTx) { ok, err = tx.TransitionOrder(ctx, orderID, to) })
	return
}

func (s *memStore) CreatePaymentEvent(ctx context.Context, e order.NewPaymentEvent) (out *order.PaymentEvent, err error) {
	s.locked(func(tx *memTx) { out, err = tx.CreatePaymentEvent(ctx, e) })
	return
}

func (s *memStore) GetPaymentEvents(ctx context.Context, q order.EventQuery) (out []order.PaymentEvent, err error) {
	s.locked(func(tx *memTx) { out, err = tx.GetPaymentEvents(ctx, q) })
	return
}

type memTx struct {
	data *memData
}

func (t *memTx) GetOrders(_ context.Context, q *order.OrdersQuery) ([]order.Order, error) {
	var out []order.Order
	for _, o := range t.data.orders {
		if len(q.IDs) > 0 && !slices.Contains(q.IDs, o.ID) {
			continue
		}
		if len(q.Numbers) > 0 && !slices.Contains(q.Numbers, o.Number) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (t *memTx) GetPayments(_ context.Context, q *order.PaymentsQuery) ([]order.Payment, error) {
	var out []order.Payment
	for _, p := range t.data.payments {
		if len(q.IDs) > 0 && !slices.Contains(q.IDs, p.ID) {
			continue
		}
		if len(q.OrderIDs) > 0 && !slices.Contains(q.OrderIDs, p.OrderID) {
			continue
		}
		if len(q.Providers) > 0 && !slices.Contains(q.Providers, p.Provider) {
			continue
		}
		if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, p.Status) {
			continue
		}
		if len(q.TransactionIDs) > 0 && (p.ProviderTransactionID == nil || !slices.Contains(q.TransactionIDs, *p.ProviderTransactionID)) {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b order.Payment) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (t *memTx) SetProviderTransactionID(_ context.Context, paymentID, transactionID string) error {
	p, ok := t.data.payments[paymentID]
	if !ok || p.Status != order.StatusPending {
		return order.ErrPaymentNotFound
	}
	p.ProviderTransactionID = &transactionID
	t.data.payments[paymentID] = p
	return nil
}

func (t *memTx) TransitionPayment(_ context.Context, paymentID string, to order.Status) (bool, error) {
	p, ok := t.data.payments[paymentID]
	if !ok || p.Status != order.StatusPending {
		return false, nil
	}
	p.Status = to
	t.data.payments[paymentID] = p
	return true, nil
}

func (t *memTx) TransitionOrder(_ context.Context, orderID string, to order.Status) (bool, error) {
	o, ok := t.data.orders[orderID]
	if !ok || o.PaymentStatus != order.StatusPending {
		return false, nil
	}
	o.PaymentStatus = to
	t.data.orders[orderID] = o
	return true, nil
}

func (t *memTx) CreatePaymentEvent(_ context.Context, e order.NewPaymentEvent) (*order.PaymentEvent, error) {
	event := order.PaymentEvent{EventID: uuid.NewString(), NewPaymentEvent: e}
	t.data.events = append(t.data.events, event)
	return &event, nil
}

func (t *memTx) GetPaymentEvents(_ context.Context, q order.EventQuery) ([]order.PaymentEvent, error) {
	var out []order.PaymentEvent
	for _, e := range t.data.events {
		if len(q.OrderIDs) > 0 && !slices.Contains(q.OrderIDs, e.OrderID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	envelopes []messaging.Envelope
}

func (p *recordingPublisher) Publish(_ context.Context, env messaging.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.envelopes = append(p.envelopes, env)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []messaging.Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.envelopes)
}
