package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/order"
	"StorefrontPayments/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

const retryAfterSeconds = "30"

type CallbackReconciler interface {
	HandleCallback(ctx context.Context, cb payment.Callback) (payment.Result, error)
}

type CallbackHandler struct {
	reconciler CallbackReconciler
	pages      CheckoutPages
}

func NewCallbackHandler(reconciler CallbackReconciler, pages CheckoutPages) *CallbackHandler {
	return &CallbackHandler{reconciler: reconciler, pages: pages}
}

// Return handles the shopper coming back from the provider and always redirects
// to a checkout page. Failures land on the error page with reason=retry.
func (h *CallbackHandler) Return(c *gin.Context) {
	res, err := h.handle(c, gateway.CallbackReturn)
	if err != nil {
		c.Redirect(http.StatusFound, h.pages.Retry())
		return
	}
	c.Redirect(http.StatusFound, h.pages.For(res))
}

// Webhook handles server-to-server notifications and answers with the provider acknowledgement.
func (h *CallbackHandler) Webhook(c *gin.Context) {
	res, err := h.handle(c, gateway.CallbackWebhook)
	if err != nil {
		abortWithCallbackError(c, err)
		return
	}
	writeAck(c, res.Ack)
}

func (h *CallbackHandler) Precheck(c *gin.Context) {
	res, err := h.handle(c, gateway.CallbackPrecheck)
	if err != nil {
		abortWithCallbackError(c, err)
		return
	}
	writeAck(c, res.Ack)
}

func (h *CallbackHandler) handle(c *gin.Context, kind gateway.CallbackKind) (payment.Result, error) {
	provider, err := gateway.NewProvider(c.Param("provider"))
	if err != nil {
		return payment.Result{}, err
	}

	params, err := callbackParams(c.Request)
	if err != nil {
		return payment.Result{}, fmt.Errorf("%w: %v", errInvalidCallbackBody, err)
	}

	res, err := h.reconciler.HandleCallback(c.Request.Context(), payment.Callback{
		Provider: provider,
		Kind:     kind,
		Params:   params,
	})
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Callback handling failed",
			"provider", provider,
			"kind", kind,
			"error", err,
		)
		return payment.Result{}, err
	}

	return res, nil
}

var errInvalidCallbackBody = errors.New("invalid callback body")

// abortWithCallbackError answers server-to-server callers. An unavailable
// provider gets 503 with Retry-After so the notification is redelivered.
func abortWithCallbackError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidCallbackBody):
		abortWithProblem(c, problemInvalidRequest, err.Error())
	case errors.Is(err, gateway.ErrProviderUnavailable):
		c.Header("Retry-After", retryAfterSeconds)
		abortWithProblem(c, problemRetryLater, "")
	default:
		abortWithError(c, err)
	}
}

// callbackParams merges the query string with a urlencoded or multipart body.
func callbackParams(r *http.Request) (url.Values, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return nil, err
		}
		return r.Form, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.Form, nil
}

func writeAck(c *gin.Context, ack gateway.Ack) {
	status := ack.Status
	if status == 0 {
		status = http.StatusOK
	}
	if ack.ContentType == "" && ack.Body == "" {
		c.Status(status)
		return
	}
	c.Data(status, ack.ContentType, []byte(ack.Body))
}

// CheckoutPages builds the storefront pages the shopper lands on after a return.
type CheckoutPages struct {
	base string
}

func NewCheckoutPages(storefrontURL string) CheckoutPages {
	return CheckoutPages{base: strings.TrimRight(storefrontURL, "/")}
}

// For picks the page from the stored order status, so a replayed return lands
// on the same page as the first one.
func (p CheckoutPages) For(res payment.Result) string {
	if res.Order == nil {
		return p.page("status", nil)
	}

	q := url.Values{"order": {res.Order.Number}}
	switch res.Status {
	case order.StatusPaid:
		return p.page("success", q)
	case order.StatusFailed, order.StatusCancelled, order.StatusRefunded:
		q.Set("reason", string(res.Status))
		return p.page("error", q)
	}

	switch res.Disposition {
	case gateway.DispositionRejected:
		q.Set("reason", "verification_failed")
		return p.page("error", q)
	default:
		return p.page("status", q)
	}
}

// Retry is the error page for a return that could not be processed.
func (p CheckoutPages) Retry() string {
	return p.page("error", url.Values{"reason": {"retry"}})
}

func (p CheckoutPages) page(name string, q url.Values) string {
	u := p.base + "/checkout/" + name
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}
