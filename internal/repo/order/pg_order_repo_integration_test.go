//go:build integration
// +build integration

package order_repo_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"
	order_repo "StorefrontPayments/internal/repo/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgOrderRepo_Reads(t *testing.T) {
	resetAndSeed(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	orders, err := repo.GetOrders(ctx, order.NewOrdersQueryBuilder().WithNumbers("1001").Build())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1001", orders[0].ID)
	assert.True(t, decimal.NewFromInt(5000).Equal(orders[0].Total))
	assert.Equal(t, "AMD", orders[0].Currency)
	assert.Equal(t, order.StatusPending, orders[0].PaymentStatus)

	payments, err := repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().
		WithProviders(gateway.ProviderArca).
		WithTransactionIDs("arca-tx-1").
		Build())
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "pay-1001-arca", payments[0].ID)

	payments, err = repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().WithOrderIDs("ord-1001").Build())
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "pay-1001-idram", payments[0].ID, "ordered by created_at")
}

func TestPgOrderRepo_ConcurrentTransitions(t *testing.T) {
	resetAndSeed(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	const workers = 10
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			to := order.StatusPaid
			if i%2 == 1 {
				to = order.StatusFailed
			}
			err := repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
				ok, err := tx.TransitionPayment(ctx, "pay-1001-idram", to)
				if err != nil || !ok {
					return errors.Join(err, errors.New("lost"))
				}
				ok, err = tx.TransitionOrder(ctx, "ord-1001", to)
				if err != nil || !ok {
					return errors.Join(err, errors.New("lost"))
				}
				return nil
			})
			if err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	orders, err := repo.GetOrders(ctx, order.NewOrdersQueryBuilder().WithIDs("ord-1001").Build())
	require.NoError(t, err)
	payments, err := repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().WithIDs("pay-1001-idram").Build())
	require.NoError(t, err)
	assert.Equal(t, orders[0].PaymentStatus, payments[0].Status)
}

func TestPgOrderRepo_InTransactionRollback(t *testing.T) {
	resetAndSeed(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	err := repo.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		ok, err := tx.TransitionPayment(ctx, "pay-1001-idram", order.StatusPaid)
		require.NoError(t, err)
		require.True(t, ok)
		return errors.New("abort")
	})
	require.Error(t, err)

	payments, err := repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().WithIDs("pay-1001-idram").Build())
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, payments[0].Status)
}

func TestPgOrderRepo_SetProviderTransactionID(t *testing.T) {
	resetAndSeed(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	require.NoError(t, repo.SetProviderTransactionID(ctx, "pay-1001-idram", "idram-tx-9"))

	err := repo.SetProviderTransactionID(ctx, "pay-1002-ameria", "ameria-tx-2")
	assert.ErrorIs(t, err, order.ErrPaymentNotFound, "settled payments keep their transaction id")
}

func TestPgOrderRepo_PaymentEvents(t *testing.T) {
	resetAndSeed(t)
	ctx := context.Background()
	repo := order_repo.NewPgOrderRepo(pg.Pool)
	paymentID := "pay-1001-idram"

	for i, kind := range []order.EventKind{order.EventInitRequested, order.EventPaymentSettled} {
		_, err := repo.CreatePaymentEvent(ctx, order.NewPaymentEvent{
			OrderID:   "ord-1001",
			PaymentID: &paymentID,
			Provider:  gateway.ProviderIdram,
			Kind:      kind,
			Data:      []byte(`{"status":"paid"}`),
			CreatedAt: time.Date(2026, 10, 16, 12, i, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	events, err := repo.GetPaymentEvents(ctx, order.EventQuery{OrderIDs: []string{"ord-1001"}})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, order.EventInitRequested, events[0].Kind)
	assert.Equal(t, order.EventPaymentSettled, events[1].Kind)

	events, err = repo.GetPaymentEvents(ctx, order.EventQuery{OrderIDs: []string{"ord-1001"}, Kinds: []order.EventKind{order.EventPaymentSettled}})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
