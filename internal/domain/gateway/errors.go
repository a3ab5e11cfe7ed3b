package gateway

import "errors"

var (
	ErrUnknownProvider = errors.New("unknown payment provider")

	// ErrNotConfigured is returned when the provider credentials are missing.
	ErrNotConfigured = errors.New("payment provider is not configured")

	ErrUnsupportedCurrency = errors.New("currency is not supported by provider")
	ErrInvalidAmount       = errors.New("invalid payment amount")
	ErrInvalidOrder        = errors.New("order cannot be paid with provider")

	// ErrProviderRejected is returned when the provider answered with a non-success response.
	ErrProviderRejected = errors.New("provider rejected the request")

	// ErrProviderUnavailable covers transport failures and timeouts.
	ErrProviderUnavailable = errors.New("provider is unavailable")

	// ErrAuthenticity is returned when a callback fails checksum or server-side verification.
	ErrAuthenticity = errors.New("callback authenticity check failed")

	ErrMalformedCallback   = errors.New("malformed callback")
	ErrUnsupportedCallback = errors.New("callback kind is not supported by provider")
)
