// Package arca implements the ArCa iPay order registration flow.
package arca

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/external/transport"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"
)

const (
	registerPath    = "/register.do"
	orderStatusPath = "/getOrderStatusExtended.do"
)

// Order states reported by getOrderStatusExtended.do.
const (
	orderRegistered    = 0
	orderPreAuthorized = 1
	orderDeposited     = 2
	orderReversed      = 3
	orderRefunded      = 4
	orderACSInitiated  = 5
	orderDeclined      = 6
)

type Config struct {
	BaseURL  string
	Username string
	Password string
}

type Client struct {
	cfg  Config
	http *transport.Client
}

var _ gateway.Adapter = (*Client)(nil)

func New(cfg Config, httpClient *http.Client) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:  cfg,
		http: transport.New(gateway.ProviderArca, httpClient),
	}
}

func (c *Client) Provider() gateway.Provider {
	return gateway.ProviderArca
}

func (c *Client) IsConfigured() bool {
	return c.cfg.BaseURL != "" && c.cfg.Username != "" && c.cfg.Password != ""
}

func (c *Client) SupportsCurrency(currency string) bool {
	_, ok := gateway.NumericCurrency(currency)
	return ok
}

type registerParams struct {
	UserName    string `url:"userName"`
	Password    string `url:"password"`
	OrderNumber string `url:"orderNumber"`
	Amount      int64  `url:"amount"`
	Currency    string `url:"currency"`
	ReturnURL   string `url:"returnUrl"`
	Description string `url:"description,omitempty"`
	Language    string `url:"language,omitempty"`
}

type registerResp struct {
	OrderID      string      `json:"orderId"`
	FormURL      string      `json:"formUrl"`
	ErrorCode    json.Number `json:"errorCode"`
	ErrorMessage string      `json:"errorMessage"`
}

func (c *Client) BuildInitiation(ctx context.Context, req gateway.InitiationRequest) (gateway.Initiation, error) {
	currency, ok := gateway.NumericCurrency(req.Currency)
	if !ok {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCurrency, req.Currency)
	}

	amount, err := minorUnits(req.Amount)
	if err != nil {
		return gateway.Initiation{}, err
	}

	form, err := query.Values(registerParams{
		UserName:    c.cfg.Username,
		Password:    c.cfg.Password,
		OrderNumber: req.OrderNumber,
		Amount:      amount,
		Currency:    currency,
		ReturnURL:   req.ReturnURL,
		Description: gateway.Description(req.OrderNumber),
		Language:    string(gateway.NormalizeLocale(req.Locale)),
	})
	if err != nil {
		return gateway.Initiation{}, fmt.Errorf("encode register params: %w", err)
	}

	resp, err := c.http.PostForm(ctx, "register", c.cfg.BaseURL+registerPath, form)
	if err != nil {
		return gateway.Initiation{}, err
	}
	if !resp.OK() {
		return gateway.Initiation{}, transport.Classify("register", resp)
	}

	var out registerResp
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return gateway.Initiation{}, fmt.Errorf("%w: decode register response: %v", gateway.ErrProviderRejected, err)
	}
	if !isSuccess(out.ErrorCode) || out.OrderID == "" || out.FormURL == "" {
		return gateway.Initiation{}, fmt.Errorf("%w: error %s: %s", gateway.ErrProviderRejected, out.ErrorCode, out.ErrorMessage)
	}

	return gateway.Initiation{
		RedirectURL:   out.FormURL,
		TransactionID: out.OrderID,
	}, nil
}

// ParseCallback reads the browser return, which only carries the bank order id.
func (c *Client) ParseCallback(kind gateway.CallbackKind, params url.Values) (gateway.Notification, error) {
	if kind != gateway.CallbackReturn {
		return gateway.Notification{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCallback, kind)
	}

	orderID := params.Get("orderId")
	if orderID == "" {
		return gateway.Notification{}, fmt.Errorf("%w: orderId is missing", gateway.ErrMalformedCallback)
	}

	return gateway.Notification{
		Provider:      gateway.ProviderArca,
		Kind:          kind,
		TransactionID: orderID,
		Outcome:       gateway.OutcomePending,
		Fields:        params,
	}, nil
}

type orderStatusParams struct {
	UserName string `url:"userName"`
	Password string `url:"password"`
	OrderID  string `url:"orderId"`
}

type orderStatusResp struct {
	ErrorCode    json.Number `json:"errorCode"`
	ErrorMessage string      `json:"errorMessage"`
	OrderNumber  string      `json:"orderNumber"`
	OrderStatus  *int        `json:"orderStatus"`
	ActionCode   int         `json:"actionCode"`
	Amount       int64       `json:"amount"`
	Currency     string      `json:"currency"`
}

func (c *Client) VerifyCallback(ctx context.Context, n gateway.Notification) (gateway.Verification, error) {
	form, err := query.Values(orderStatusParams{
		UserName: c.cfg.Username,
		Password: c.cfg.Password,
		OrderID:  n.TransactionID,
	})
	if err != nil {
		return gateway.Verification{}, fmt.Errorf("encode order status params: %w", err)
	}

	resp, err := c.http.PostForm(ctx, "order_status", c.cfg.BaseURL+orderStatusPath, form)
	if err != nil {
		return gateway.Verification{}, err
	}
	if !resp.OK() {
		if err := transport.Classify("order_status", resp); !errors.Is(err, gateway.ErrProviderRejected) {
			return gateway.Verification{}, err
		}
		return gateway.Verification{}, fmt.Errorf("%w: order status %s: %s", gateway.ErrAuthenticity, n.TransactionID, resp.Status)
	}

	var out orderStatusResp
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return gateway.Verification{}, fmt.Errorf("%w: decode order status: %v", gateway.ErrProviderUnavailable, err)
	}
	if !isSuccess(out.ErrorCode) || out.OrderStatus == nil {
		return gateway.Verification{}, fmt.Errorf("%w: order %s: error %s: %s", gateway.ErrAuthenticity, n.TransactionID, out.ErrorCode, out.ErrorMessage)
	}

	v := gateway.Verification{
		Outcome:       outcome(*out.OrderStatus),
		TransactionID: n.TransactionID,
	}
	amount := decimal.New(out.Amount, -2)
	v.Amount = &amount
	if alpha, ok := gateway.AlphaCurrency(out.Currency); ok {
		v.Currency = alpha
	} else {
		v.Currency = out.Currency
	}
	return v, nil
}

func outcome(status int) gateway.Outcome {
	switch status {
	case orderPreAuthorized, orderDeposited:
		return gateway.OutcomePaid
	case orderReversed, orderRefunded:
		return gateway.OutcomeCancelled
	case orderDeclined:
		return gateway.OutcomeFailed
	case orderRegistered, orderACSInitiated:
		return gateway.OutcomePending
	default:
		return gateway.OutcomePending
	}
}

func (c *Client) ResolveStrategies() []gateway.ResolveStrategy {
	return []gateway.ResolveStrategy{gateway.ResolveByTransactionID}
}

func (c *Client) Acknowledge(gateway.CallbackKind, gateway.Disposition) gateway.Ack {
	return gateway.EmptyAck()
}

// minorUnits converts a major-unit amount, rejecting fractions below one cent.
func minorUnits(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(2)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s has more than two decimals", gateway.ErrInvalidAmount, amount)
	}
	return shifted.IntPart(), nil
}

func isSuccess(code json.Number) bool {
	return code == "" || code == "0"
}
