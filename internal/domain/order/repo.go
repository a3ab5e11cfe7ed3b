package order

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package order

type OrderRepo interface {
	TxOrderRepo
	InTransaction(ctx context.Context, fn func(repo TxOrderRepo) error) error
}

type TxOrderRepo interface {
	GetOrders(ctx context.Context, query *OrdersQuery) ([]Order, error)
	GetPayments(ctx context.Context, query *PaymentsQuery) ([]Payment, error)

	// SetProviderTransactionID stores the provider id on a pending payment.
	SetProviderTransactionID(ctx context.Context, paymentID, transactionID string) error

	// TransitionPayment and TransitionOrder move a pending row to the target status.
	// They report false when the row was no longer pending.
	TransitionPayment(ctx context.Context, paymentID string, to Status) (bool, error)
	TransitionOrder(ctx context.Context, orderID string, to Status) (bool, error)

	CreatePaymentEvent(ctx context.Context, event NewPaymentEvent) (*PaymentEvent, error)
	GetPaymentEvents(ctx context.Context, query EventQuery) ([]PaymentEvent, error)
}
