package order

import (
	"fmt"
	"slices"
	"time"

	"StorefrontPayments/internal/domain/gateway"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	PaymentStatus Status          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (o Order) IsPending() bool {
	return o.PaymentStatus == StatusPending
}

type Payment struct {
	ID                    string           `json:"id"`
	OrderID               string           `json:"order_id"`
	Provider              gateway.Provider `json:"provider"`
	Status                Status           `json:"status"`
	ProviderTransactionID *string          `json:"provider_transaction_id,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

var AvailableStatuses = []Status{StatusPending, StatusPaid, StatusFailed, StatusCancelled, StatusRefunded}

// CanBeUpdatedTo holds the allowed transitions. Refunds happen outside this service.
func (s Status) CanBeUpdatedTo(newStatus Status) bool {
	switch s {
	case StatusPending:
		return slices.Contains([]Status{StatusPaid, StatusFailed, StatusCancelled}, newStatus)
	case StatusPaid:
		return newStatus == StatusRefunded
	default:
		return false
	}
}

func (s Status) IsFinal() bool {
	return s != StatusPending
}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

// StatusFromOutcome maps a verified provider outcome to the target status.
// ok is false for undecided outcomes.
func StatusFromOutcome(o gateway.Outcome) (Status, bool) {
	switch o {
	case gateway.OutcomePaid:
		return StatusPaid, true
	case gateway.OutcomeFailed:
		return StatusFailed, true
	case gateway.OutcomeCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}
