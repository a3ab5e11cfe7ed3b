package order_repo

import (
	"fmt"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func parseOrderRows(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order

	for rows.Next() {
		var (
			o         order.Order
			rawTotal  string
			rawStatus string
		)
		err := rows.Scan(&o.ID, &o.Number, &rawTotal, &o.Currency, &rawStatus, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if o.Total, err = decimal.NewFromString(rawTotal); err != nil {
			return nil, fmt.Errorf("parse order total %q: %w", rawTotal, err)
		}
		if o.PaymentStatus, err = order.NewStatus(rawStatus); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func parsePaymentRows(rows pgx.Rows) ([]order.Payment, error) {
	var payments []order.Payment

	for rows.Next() {
		var (
			p           order.Payment
			rawProvider string
			rawStatus   string
		)
		err := rows.Scan(&p.ID, &p.OrderID, &rawProvider, &rawStatus, &p.ProviderTransactionID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}

		if p.Provider, err = gateway.NewProvider(rawProvider); err != nil {
			return nil, err
		}
		if p.Status, err = order.NewStatus(rawStatus); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func parseEventRows(rows pgx.Rows) ([]order.PaymentEvent, error) {
	var events []order.PaymentEvent

	for rows.Next() {
		var (
			e           order.PaymentEvent
			rawProvider string
			rawKind     string
		)
		err := rows.Scan(&e.EventID, &e.OrderID, &e.PaymentID, &rawProvider, &rawKind, &e.Data, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment event row: %w", err)
		}

		e.Provider = gateway.Provider(rawProvider)
		e.Kind = order.EventKind(rawKind)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment event rows: %w", err)
	}

	return events, nil
}
