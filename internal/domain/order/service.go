package order

import (
	"context"
	"fmt"
)

type OrderService struct {
	orderRepo OrderRepo
}

func NewOrderService(orderRepo OrderRepo) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// PaymentState is the read model of the checkout status page.
type PaymentState struct {
	Order    Order     `json:"order"`
	Payments []Payment `json:"payments"`
}

func (s *OrderService) GetPaymentState(ctx context.Context, number string) (PaymentState, error) {
	o, err := FindByNumber(ctx, s.orderRepo, number)
	if err != nil {
		return PaymentState{}, err
	}

	payments, err := s.orderRepo.GetPayments(ctx, NewPaymentsQueryBuilder().WithOrderIDs(o.ID).Build())
	if err != nil {
		return PaymentState{}, fmt.Errorf("get payments: %w", err)
	}

	return PaymentState{Order: o, Payments: payments}, nil
}

func (s *OrderService) GetEvents(ctx context.Context, number string, query EventQuery) ([]PaymentEvent, error) {
	o, err := FindByNumber(ctx, s.orderRepo, number)
	if err != nil {
		return nil, err
	}

	query.OrderIDs = []string{o.ID}
	events, err := s.orderRepo.GetPaymentEvents(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get events for order %s: %w", number, err)
	}
	return events, nil
}

func FindByNumber(ctx context.Context, repo TxOrderRepo, number string) (Order, error) {
	return findOne(ctx, repo, NewOrdersQueryBuilder().WithNumbers(number).Build())
}

func FindByID(ctx context.Context, repo TxOrderRepo, id string) (Order, error) {
	return findOne(ctx, repo, NewOrdersQueryBuilder().WithIDs(id).Build())
}

func findOne(ctx context.Context, repo TxOrderRepo, query *OrdersQuery) (Order, error) {
	orders, err := repo.GetOrders(ctx, query)
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}
	if len(orders) == 0 {
		return Order{}, ErrNotFound
	}
	return orders[0], nil
}
