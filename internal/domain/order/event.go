package order

import (
	"encoding/json"
	"time"

	"StorefrontPayments/internal/domain/gateway"
)

type PaymentEvent struct {
	EventID string `json:"event_id"`
	NewPaymentEvent
}

type NewPaymentEvent struct {
	OrderID   string           `json:"order_id"`
	PaymentID *string          `json:"payment_id,omitempty"`
	Provider  gateway.Provider `json:"provider"`
	Kind      EventKind        `json:"kind"`
	Data      json.RawMessage  `json:"data"`
	CreatedAt time.Time        `json:"created_at"`
}

type EventKind string

// Only accepted initiations and settlements are stored. Rejected or ignored
// callbacks are logged and leave the store untouched.
const (
	EventInitRequested  EventKind = "init_requested"
	EventPaymentSettled EventKind = "payment_settled"
)

type EventQuery struct {
	OrderIDs []string    `json:"order_ids" form:"order_ids,omitempty"`
	Kinds    []EventKind `json:"kinds" form:"kinds,omitempty"`
	Limit    int         `json:"limit" form:"limit"`
}
