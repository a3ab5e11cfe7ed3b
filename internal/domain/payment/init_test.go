package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func initService(t *testing.T, dedup bool) (*InitService, *order.MockOrderRepo, *gateway.MockAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := order.NewMockOrderRepo(ctrl)
	adapter := gateway.NewMockAdapter(ctrl)
	adapter.EXPECT().Provider().Return(gateway.ProviderAmeriabank).AnyTimes()

	service := NewInitService(repo, gateway.NewRegistry(adapter), InitOptions{
		PublicBaseURL: "https://shop.example/",
		Dedup:         dedup,
	})
	return service, repo, adapter
}

func pendingOrder() order.Order {
	return order.Order{
		ID:            "ord-1",
		Number:        "1001",
		Total:         decimal.NewFromInt(5000),
		Currency:      "AMD",
		PaymentStatus: order.StatusPending,
	}
}

func TestInitService_Initiate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pendingPayments := []order.Payment{{ID: "pay-1", OrderID: "ord-1", Provider: gateway.ProviderAmeriabank, Status: order.StatusPending}}

	testCases := []struct {
		name        string
		provider    gateway.Provider
		mock        func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter)
		expected    gateway.Initiation
		expectedErr error
	}{
		{
			name:     "should return redirect and store transaction id",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]order.Order{pendingOrder()}, nil)
				repo.EXPECT().GetPayments(ctx, order.NewPaymentsQueryBuilder().
					WithOrderIDs("ord-1").
					WithProviders(gateway.ProviderAmeriabank).
					WithStatuses(order.StatusPending).
					Build()).Return(pendingPayments, nil)
				adapter.EXPECT().SupportsCurrency("AMD").Return(true)
				adapter.EXPECT().BuildInitiation(ctx, gateway.InitiationRequest{
					OrderID:     "ord-1",
					OrderNumber: "1001",
					PaymentID:   "pay-1",
					Amount:      decimal.NewFromInt(5000),
					Currency:    "AMD",
					Locale:      "en",
					ReturnURL:   "https://shop.example/callback/ameriabank/return",
				}).Return(gateway.Initiation{RedirectURL: "https://bank/pay?id=tx-1", TransactionID: "tx-1"}, nil)
				repo.EXPECT().SetProviderTransactionID(ctx, "pay-1", "tx-1").Return(nil)
				repo.EXPECT().CreatePaymentEvent(ctx, gomock.Any()).Return(&order.PaymentEvent{}, nil)
			},
			expected: gateway.Initiation{RedirectURL: "https://bank/pay?id=tx-1", TransactionID: "tx-1"},
		},
		{
			name:     "should fail for unknown provider",
			provider: gateway.ProviderIdram,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
			},
			expectedErr: gateway.ErrUnknownProvider,
		},
		{
			name:     "should fail when provider is not configured",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				adapter.EXPECT().IsConfigured().Return(false)
			},
			expectedErr: gateway.ErrNotConfigured,
		},
		{
			name:     "should fail when order does not exist",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return(nil, nil)
			},
			expectedErr: order.ErrNotFound,
		},
		{
			name:     "should fail when order is already paid",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				paid := pendingOrder()
				paid.PaymentStatus = order.StatusPaid
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]order.Order{paid}, nil)
			},
			expectedErr: order.ErrNotPending,
		},
		{
			name:     "should fail without a pending payment for the provider",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]order.Order{pendingOrder()}, nil)
				repo.EXPECT().GetPayments(ctx, gomock.Any()).Return(nil, nil)
			},
			expectedErr: order.ErrPaymentNotFound,
		},
		{
			name:     "should fail for non positive total",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				free := pendingOrder()
				free.Total = decimal.Zero
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]order.Order{free}, nil)
				repo.EXPECT().GetPayments(ctx, gomock.Any()).Return(pendingPayments, nil)
			},
			expectedErr: gateway.ErrInvalidAmount,
		},
		{
			name:     "should not call provider for unsupported currency",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				usd := pendingOrder()
				usd.Currency = "GBP"
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]order.Order{usd}, nil)
				repo.EXPECT().GetPayments(ctx, gomock.Any()).Return(pendingPayments, nil)
				adapter.EXPECT().SupportsCurrency("GBP").Return(false)
				adapter.EXPECT().BuildInitiation(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: gateway.ErrUnsupportedCurrency,
		},
		{
			name:     "should pass provider rejection through",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]order.Order{pendingOrder()}, nil)
				repo.EXPECT().GetPayments(ctx, gomock.Any()).Return(pendingPayments, nil)
				adapter.EXPECT().SupportsCurrency("AMD").Return(true)
				adapter.EXPECT().BuildInitiation(ctx, gomock.Any()).Return(gateway.Initiation{}, gateway.ErrProviderRejected)
			},
			expectedErr: gateway.ErrProviderRejected,
		},
		{
			name:     "should succeed when init event cannot be stored",
			provider: gateway.ProviderAmeriabank,
			mock: func(repo *order.MockOrderRepo, adapter *gateway.MockAdapter) {
				adapter.EXPECT().IsConfigured().Return(true)
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]order.Order{pendingOrder()}, nil)
				repo.EXPECT().GetPayments(ctx, gomock.Any()).Return(pendingPayments, nil)
				adapter.EXPECT().SupportsCurrency("AMD").Return(true)
				adapter.EXPECT().BuildInitiation(ctx, gomock.Any()).Return(gateway.Initiation{FormAction: "https://idram/pay"}, nil)
				repo.EXPECT().CreatePaymentEvent(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expected: gateway.Initiation{FormAction: "https://idram/pay"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, repo, adapter := initService(t, false)
			tc.mock(repo, adapter)

			// when
			res, err := service.Initiate(ctx, InitiateRequest{OrderNumber: "1001", Provider: tc.provider, Locale: "en"})

			// then
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestInitService_Initiate_DedupConcurrent(t *testing.T) {
	t.Parallel()

	// given
	service, repo, adapter := initService(t, true)
	pendingPayments := []order.Payment{{ID: "pay-1", OrderID: "ord-1", Provider: gateway.ProviderAmeriabank, Status: order.StatusPending}}

	adapter.EXPECT().IsConfigured().Return(true).AnyTimes()
	adapter.EXPECT().SupportsCurrency("AMD").Return(true).AnyTimes()
	repo.EXPECT().GetOrders(gomock.Any(), gomock.Any()).Return([]order.Order{pendingOrder()}, nil).AnyTimes()
	repo.EXPECT().GetPayments(gomock.Any(), gomock.Any()).Return(pendingPayments, nil).AnyTimes()

	release := make(chan struct{})
	adapter.EXPECT().BuildInitiation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, gateway.InitiationRequest) (gateway.Initiation, error) {
			<-release
			return gateway.Initiation{RedirectURL: "https://bank/pay?id=tx-1", TransactionID: "tx-1"}, nil
		}).MinTimes(1).MaxTimes(2)
	repo.EXPECT().SetProviderTransactionID(gomock.Any(), "pay-1", "tx-1").Return(nil).MinTimes(1).MaxTimes(2)
	repo.EXPECT().CreatePaymentEvent(gomock.Any(), gomock.Any()).Return(&order.PaymentEvent{}, nil).MinTimes(1).MaxTimes(2)

	// when
	var wg sync.WaitGroup
	results := make([]gateway.Initiation, 2)
	errs := make([]error, 2)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = service.Initiate(context.Background(), InitiateRequest{OrderNumber: "1001", Provider: gateway.ProviderAmeriabank})
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	// then
	for i := range 2 {
		require.NoError(t, errs[i])
		assert.Equal(t, "https://bank/pay?id=tx-1", results[i].RedirectURL)
	}
}
