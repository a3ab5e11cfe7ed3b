package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"

	"github.com/gin-gonic/gin"
)

const problemContentType = "application/problem+json"

// Problem is an RFC 7807 error document.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

type problemKind struct {
	slug   string
	title  string
	status int
}

var (
	problemInvalidRequest      = problemKind{"invalid-request", "Invalid request", http.StatusBadRequest}
	problemUnknownProvider     = problemKind{"unknown-provider", "Unknown payment provider", http.StatusNotFound}
	problemUnsupportedCallback = problemKind{"unsupported-callback", "Callback is not supported by the provider", http.StatusNotFound}
	problemNotConfigured       = problemKind{"provider-not-configured", "Payment provider is not configured", http.StatusServiceUnavailable}
	problemOrderNotFound       = problemKind{"order-not-found", "Order not found", http.StatusNotFound}
	problemNotPending          = problemKind{"order-not-pending", "Order is not awaiting payment", http.StatusBadRequest}
	problemNoPendingPayment    = problemKind{"payment-not-found", "No pending payment for this provider", http.StatusNotFound}
	problemInvalidAmount       = problemKind{"invalid-amount", "Order amount cannot be paid", http.StatusBadRequest}
	problemUnsupportedCurrency = problemKind{"unsupported-currency", "Currency is not supported by the provider", http.StatusBadRequest}
	problemInvalidOrder        = problemKind{"invalid-order", "Order cannot be paid with this provider", http.StatusBadRequest}
	problemProviderRejected    = problemKind{"provider-rejected", "Payment provider rejected the request", http.StatusPaymentRequired}
	problemProviderUnavailable = problemKind{"provider-unavailable", "Payment provider is unavailable", http.StatusBadGateway}
	problemInternal            = problemKind{"internal", "Internal server error", http.StatusInternalServerError}

	// problemRetryLater asks a provider to redeliver a callback.
	problemRetryLater = problemKind{"provider-unavailable", "Payment provider is unavailable", http.StatusServiceUnavailable}
)

func classify(err error) problemKind {
	switch {
	case errors.Is(err, gateway.ErrUnknownProvider):
		return problemUnknownProvider
	case errors.Is(err, gateway.ErrUnsupportedCallback):
		return problemUnsupportedCallback
	case errors.Is(err, gateway.ErrNotConfigured):
		return problemNotConfigured
	case errors.Is(err, order.ErrNotFound):
		return problemOrderNotFound
	case errors.Is(err, order.ErrNotPending):
		return problemNotPending
	case errors.Is(err, order.ErrPaymentNotFound):
		return problemNoPendingPayment
	case errors.Is(err, gateway.ErrInvalidAmount):
		return problemInvalidAmount
	case errors.Is(err, gateway.ErrUnsupportedCurrency):
		return problemUnsupportedCurrency
	case errors.Is(err, gateway.ErrInvalidOrder):
		return problemInvalidOrder
	case errors.Is(err, gateway.ErrProviderRejected):
		return problemProviderRejected
	case errors.Is(err, gateway.ErrProviderUnavailable):
		return problemProviderUnavailable
	default:
		return problemInternal
	}
}

func abortWithProblem(c *gin.Context, kind problemKind, detail string) {
	c.Render(kind.status, problemRender{Problem{
		Type:     "/problems/" + kind.slug,
		Title:    kind.title,
		Status:   kind.status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}})
	c.Abort()
}

// abortWithError hides internal error details from the client.
func abortWithError(c *gin.Context, err error) {
	kind := classify(err)
	detail := err.Error()
	if kind == problemInternal {
		detail = ""
	}
	abortWithProblem(c, kind, detail)
}

type problemRender struct {
	problem Problem
}

func (r problemRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return json.NewEncoder(w).Encode(r.problem)
}

func (r problemRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", problemContentType)
}
