package order_repo

import (
	"context"
	"fmt"

	"StorefrontPayments/internal/domain/order"
	"StorefrontPayments/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	ordersTable   = "orders"
	paymentsTable = "payments"
	eventsTable   = "payment_events"
)

// PgOrderRepo is the main repository
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) order.OrderRepo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(repo order.TxOrderRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetOrders(ctx context.Context, query *order.OrdersQuery) ([]order.Order, error) {
	b := r.builder.Select("id", "number", "total::text", "currency", "payment_status", "created_at", "updated_at").
		From(ordersTable)

	if len(query.IDs) > 0 {
		b = b.Where(squirrel.Eq{"id": query.IDs})
	}
	if len(query.Numbers) > 0 {
		b = b.Where(squirrel.Eq{"number": query.Numbers})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	return parseOrderRows(rows)
}

func (r *repo) GetPayments(ctx context.Context, query *order.PaymentsQuery) ([]order.Payment, error) {
	b := r.builder.Select("id", "order_id", "provider", "status", "provider_transaction_id", "created_at", "updated_at").
		From(paymentsTable)

	if len(query.IDs) > 0 {
		b = b.Where(squirrel.Eq{"id": query.IDs})
	}
	if len(query.OrderIDs) > 0 {
		b = b.Where(squirrel.Eq{"order_id": query.OrderIDs})
	}
	if len(query.Providers) > 0 {
		b = b.Where(squirrel.Eq{"provider": toStrings(query.Providers)})
	}
	if len(query.Statuses) > 0 {
		b = b.Where(squirrel.Eq{"status": toStrings(query.Statuses)})
	}
	if len(query.TransactionIDs) > 0 {
		b = b.Where(squirrel.Eq{"provider_transaction_id": query.TransactionIDs})
	}

	sql, args, err := b.OrderBy("created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	return parsePaymentRows(rows)
}

func (r *repo) SetProviderTransactionID(ctx context.Context, paymentID, transactionID string) error {
	sql, args, err := r.builder.Update(paymentsTable).
		Set("provider_transaction_id", transactionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": paymentID}).
		Where(squirrel.Eq{"status": string(order.StatusPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update transaction id query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update provider transaction id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrPaymentNotFound
	}
	return nil
}

func (r *repo) TransitionPayment(ctx context.Context, paymentID string, to order.Status) (bool, error) {
	return r.transition(ctx, paymentsTable, "status", paymentID, to)
}

func (r *repo) TransitionOrder(ctx context.Context, orderID string, to order.Status) (bool, error) {
	return r.transition(ctx, ordersTable, "payment_status", orderID, to)
}

// transition is a compare-and-swap: it only touches rows that are still pending.
func (r *repo) transition(ctx context.Context, table, column, id string, to order.Status) (bool, error) {
	sql, args, err := r.builder.Update(table).
		Set(column, string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{column: string(order.StatusPending)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s transition query: %w", table, err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("transition %s: %w", table, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repo) CreatePaymentEvent(ctx context.Context, event order.NewPaymentEvent) (*order.PaymentEvent, error) {
	id := uuid.New().String()

	sql, args, err := r.builder.Insert(eventsTable).
		Columns("id", "order_id", "payment_id", "provider", "kind", "data", "created_at").
		Values(id, event.OrderID, event.PaymentID, string(event.Provider), string(event.Kind), event.Data, event.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("create payment event: %w", err)
	}

	return &order.PaymentEvent{
		EventID:         id,
		NewPaymentEvent: event,
	}, nil
}

func (r *repo) GetPaymentEvents(ctx context.Context, query order.EventQuery) ([]order.PaymentEvent, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Limit > 1000 {
		query.Limit = 1000
	}

	b := r.builder.Select("id", "order_id", "payment_id", "provider", "kind", "data", "created_at").
		From(eventsTable)

	if len(query.OrderIDs) > 0 {
		b = b.Where(squirrel.Eq{"order_id": query.OrderIDs})
	}
	if len(query.Kinds) > 0 {
		b = b.Where(squirrel.Eq{"kind": toStrings(query.Kinds)})
	}

	sql, args, err := b.OrderBy("created_at ASC", "id ASC").Limit(uint64(query.Limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query payment events: %w", err)
	}
	defer rows.Close()

	return parseEventRows(rows)
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
