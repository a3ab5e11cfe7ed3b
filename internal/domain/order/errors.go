package order

import "errors"

var (
	// ErrNotFound is returned when order is not found
	ErrNotFound = errors.New("order not found")

	// ErrPaymentNotFound is returned when no pending payment exists for the provider
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid payment status")

	// ErrNotPending is returned when the order payment is already settled
	ErrNotPending = errors.New("order payment is not pending")
)
