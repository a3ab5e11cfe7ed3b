package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"StorefrontPayments/internal/domain/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func orderService(t *testing.T) (*OrderService, *MockOrderRepo) {
	t.Helper()

	mockRepo := NewMockOrderRepo(gomock.NewController(t))
	service := NewOrderService(mockRepo)

	return service, mockRepo
}

func TestOrderService_GetPaymentState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	existing := Order{
		ID:            "ord-1",
		Number:        "1001",
		Total:         decimal.NewFromInt(5000),
		Currency:      "AMD",
		PaymentStatus: StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	payments := []Payment{{ID: "pay-1", OrderID: "ord-1", Provider: gateway.ProviderIdram, Status: StatusPending}}

	testCases := []struct {
		name          string
		mock          func(repo *MockOrderRepo)
		expected      PaymentState
		expectedError string
	}{
		{
			name: "should return order with payments",
			mock: func(repo *MockOrderRepo) {
				repo.EXPECT().GetOrders(ctx, NewOrdersQueryBuilder().WithNumbers("1001").Build()).Return([]Order{existing}, nil)
				repo.EXPECT().GetPayments(ctx, NewPaymentsQueryBuilder().WithOrderIDs("ord-1").Build()).Return(payments, nil)
			},
			expected: PaymentState{Order: existing, Payments: payments},
		},
		{
			name: "should return ErrNotFound when order not found",
			mock: func(repo *MockOrderRepo) {
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]Order{}, nil)
			},
			expectedError: ErrNotFound.Error(),
		},
		{
			name: "should wrap repository error",
			mock: func(repo *MockOrderRepo) {
				repo.EXPECT().GetOrders(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: "get order: database error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, mockRepo := orderService(t)
			tc.mock(mockRepo)

			// when
			result, err := service.GetPaymentState(ctx, "1001")

			// then
			if tc.expectedError != "" {
				assert.EqualError(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestOrderService_GetEvents(t *testing.T) {
	t.Parallel()

	// given
	ctx := context.Background()
	service, mockRepo := orderService(t)
	events := []PaymentEvent{{EventID: "evt-1", NewPaymentEvent: NewPaymentEvent{OrderID: "ord-1", Kind: EventPaymentSettled}}}

	mockRepo.EXPECT().GetOrders(ctx, gomock.Any()).Return([]Order{{ID: "ord-1", Number: "1001"}}, nil)
	mockRepo.EXPECT().GetPaymentEvents(ctx, EventQuery{OrderIDs: []string{"ord-1"}, Limit: 20}).Return(events, nil)

	// when
	result, err := service.GetEvents(ctx, "1001", EventQuery{Limit: 20})

	// then
	require.NoError(t, err)
	assert.Equal(t, events, result)
}

func TestStatus_CanBeUpdatedTo(t *testing.T) {
	testCases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusRefunded, false},
		{StatusPending, StatusPending, false},
		{StatusPaid, StatusRefunded, true},
		{StatusPaid, StatusFailed, false},
		{StatusFailed, StatusPaid, false},
		{StatusCancelled, StatusPaid, false},
		{StatusRefunded, StatusPaid, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanBeUpdatedTo(tc.to))
		})
	}
}

func TestStatusFromOutcome(t *testing.T) {
	s, ok := StatusFromOutcome(gateway.OutcomePaid)
	assert.True(t, ok)
	assert.Equal(t, StatusPaid, s)

	s, ok = StatusFromOutcome(gateway.OutcomeCancelled)
	assert.True(t, ok)
	assert.Equal(t, StatusCancelled, s)

	_, ok = StatusFromOutcome(gateway.OutcomePending)
	assert.False(t, ok)
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, s)

	_, err = NewStatus("success")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
