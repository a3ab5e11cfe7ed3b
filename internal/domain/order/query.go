package order

import "StorefrontPayments/internal/domain/gateway"

type OrdersQuery struct {
	IDs     []string
	Numbers []string
}

type OrdersQueryBuilder struct {
	query *OrdersQuery
}

func NewOrdersQueryBuilder() *OrdersQueryBuilder {
	return &OrdersQueryBuilder{
		query: &OrdersQuery{},
	}
}

func (b *OrdersQueryBuilder) WithIDs(ids ...string) *OrdersQueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *OrdersQueryBuilder) WithNumbers(numbers ...string) *OrdersQueryBuilder {
	b.query.Numbers = numbers
	return b
}

func (b *OrdersQueryBuilder) Build() *OrdersQuery {
	return b.query
}

type PaymentsQuery struct {
	IDs            []string
	OrderIDs       []string
	Providers      []gateway.Provider
	Statuses       []Status
	TransactionIDs []string
}

type PaymentsQueryBuilder struct {
	query *PaymentsQuery
}

func NewPaymentsQueryBuilder() *PaymentsQueryBuilder {
	return &PaymentsQueryBuilder{
		query: &PaymentsQuery{},
	}
}

func (b *PaymentsQueryBuilder) WithIDs(ids ...string) *PaymentsQueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *PaymentsQueryBuilder) WithOrderIDs(orderIDs ...string) *PaymentsQueryBuilder {
	b.query.OrderIDs = orderIDs
	return b
}

func (b *PaymentsQueryBuilder) WithProviders(providers ...gateway.Provider) *PaymentsQueryBuilder {
	b.query.Providers = providers
	return b
}

func (b *PaymentsQueryBuilder) WithStatuses(statuses ...Status) *PaymentsQueryBuilder {
	b.query.Statuses = statuses
	return b
}

func (b *PaymentsQueryBuilder) WithTransactionIDs(txIDs ...string) *PaymentsQueryBuilder {
	b.query.TransactionIDs = txIDs
	return b
}

func (b *PaymentsQueryBuilder) Build() *PaymentsQuery {
	return b.query
}
