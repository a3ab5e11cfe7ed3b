package gateway

import (
	"context"
	"net/url"
)

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

// Adapter translates between the payment core and one external provider protocol.
type Adapter interface {
	Provider() Provider
	// IsConfigured reports whether credentials and endpoints are present.
	IsConfigured() bool
	SupportsCurrency(currency string) bool

	// BuildInitiation performs at most one outbound call to the provider.
	BuildInitiation(ctx context.Context, req InitiationRequest) (Initiation, error)

	ParseCallback(kind CallbackKind, params url.Values) (Notification, error)
	// VerifyCallback returns the authoritative outcome of a notification.
	// Checksum providers verify locally, the others ask the provider.
	VerifyCallback(ctx context.Context, n Notification) (Verification, error)
	ResolveStrategies() []ResolveStrategy

	Acknowledge(kind CallbackKind, d Disposition) Ack
}
