package payment

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"
)

// resolved is the order a callback refers to, plus the payment when the
// provider reference pointed at one directly.
type resolved struct {
	order   order.Order
	payment *order.Payment
}

// resolve tries the adapter's strategies in order and stops at the first hit.
func resolve(ctx context.Context, repo order.TxOrderRepo, adapter gateway.Adapter, n gateway.Notification) (resolved, error) {
	for _, strategy := range adapter.ResolveStrategies() {
		res, err := resolveWith(ctx, repo, adapter.Provider(), strategy, n)
		if errors.Is(err, order.ErrNotFound) {
			continue
		}
		if err != nil {
			return resolved{}, fmt.Errorf("resolve by %s: %w", strategy, err)
		}
		return res, nil
	}
	return resolved{}, order.ErrNotFound
}

func resolveWith(ctx context.Context, repo order.TxOrderRepo, provider gateway.Provider, strategy gateway.ResolveStrategy, n gateway.Notification) (resolved, error) {
	switch strategy {
	case gateway.ResolveByNumber:
		return byOrder(order.FindByNumber(ctx, repo, n.OrderRef))
	case gateway.ResolveByID:
		return byOrder(order.FindByID(ctx, repo, n.OrderRef))
	case gateway.ResolveByOpaqueID:
		ref := decodeOpaqueID(n.OrderRef)
		res, err := byOrder(order.FindByNumber(ctx, repo, ref))
		if !errors.Is(err, order.ErrNotFound) {
			return res, err
		}
		return byOrder(order.FindByID(ctx, repo, ref))
	case gateway.ResolveByTransactionID:
		if n.TransactionID == "" {
			return resolved{}, order.ErrNotFound
		}
		payments, err := repo.GetPayments(ctx, order.NewPaymentsQueryBuilder().
			WithProviders(provider).
			WithTransactionIDs(n.TransactionID).
			Build())
		if err != nil {
			return resolved{}, fmt.Errorf("get payments: %w", err)
		}
		if len(payments) == 0 {
			return resolved{}, order.ErrNotFound
		}
		p := payments[0]
		o, err := order.FindByID(ctx, repo, p.OrderID)
		if err != nil {
			return resolved{}, err
		}
		return resolved{order: o, payment: &p}, nil
	default:
		return resolved{}, order.ErrNotFound
	}
}

func byOrder(o order.Order, err error) (resolved, error) {
	if err != nil {
		return resolved{}, err
	}
	return resolved{order: o}, nil
}

// decodeOpaqueID reverses the base64 order reference some providers echo back.
// Anything that does not decode to printable UTF-8 is taken literally.
func decodeOpaqueID(ref string) string {
	raw, err := base64.StdEncoding.DecodeString(ref)
	if err != nil || len(raw) == 0 || !utf8.Valid(raw) {
		return ref
	}
	decoded := string(raw)
	if strings.IndexFunc(decoded, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0 {
		return ref
	}
	return decoded
}
