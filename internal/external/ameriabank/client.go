// Package ameriabank implements the vPOS 3.x redirect flow.
//
// The browser return carries only hints. The outcome is always read back with
// GetPaymentDetails before any state changes.
package ameriabank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/external/transport"

	"github.com/shopspring/decimal"
)

const (
	initPaymentPath    = "/api/VPOS/InitPayment"
	paymentDetailsPath = "/api/VPOS/GetPaymentDetails"
	payPath            = "/Payments/Pay"

	initSuccessCode    = 1
	detailsSuccessCode = "00"
)

type Config struct {
	BaseURL  string
	ClientID string
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
		http: transport.New(gateway.ProviderAmeriabank, httpClient),
	}
}

func (c *Client) Provider() gateway.Provider {
	return gateway.ProviderAmeriabank
}

func (c *Client) IsConfigured() bool {
	return c.cfg.BaseURL != "" && c.cfg.ClientID != "" && c.cfg.Username != "" && c.cfg.Password != ""
}

func (c *Client) SupportsCurrency(currency string) bool {
	_, ok := gateway.NumericCurrency(currency)
	return ok
}

type initPaymentReq struct {
	ClientID    string      `json:"ClientID"`
	Username    string      `json:"Username"`
	Password    string      `json:"Password"`
	Currency    string      `json:"Currency"`
	Description string      `json:"Description"`
	OrderID     int64       `json:"OrderID"`
	Amount      json.Number `json:"Amount"`
	BackURL     string      `json:"BackURL"`
	Opaque      string      `json:"Opaque"`
}

type initPaymentResp struct {
	PaymentID       string `json:"PaymentID"`
	ResponseCode    int    `json:"ResponseCode"`
	ResponseMessage string `json:"ResponseMessage"`
}

func (c *Client) BuildInitiation(ctx context.Context, req gateway.InitiationRequest) (gateway.Initiation, error) {
	currency, ok := gateway.NumericCurrency(req.Currency)
	if !ok {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCurrency, req.Currency)
	}

	// vPOS only accepts numeric merchant order ids.
	orderID, err := strconv.ParseInt(req.OrderNumber, 10, 64)
	if err != nil || orderID <= 0 {
		return gateway.Initiation{}, fmt.Errorf("%w: order number %q is not numeric", gateway.ErrInvalidOrder, req.OrderNumber)
	}

	body := initPaymentReq{
		ClientID:    c.cfg.ClientID,
		Username:    c.cfg.Username,
		Password:    c.cfg.Password,
		Currency:    currency,
		Description: gateway.Description(req.OrderNumber),
		OrderID:     orderID,
		Amount:      json.Number(req.Amount.StringFixed(2)),
		BackURL:     req.ReturnURL,
		Opaque:      req.OrderID,
	}

	resp, err := c.http.PostJSON(ctx, "init_payment", c.cfg.BaseURL+initPaymentPath, body)
	if err != nil {
		return gateway.Initiation{}, err
	}
	if !resp.OK() {
		return gateway.Initiation{}, transport.Classify("init_payment", resp)
	}

	var out initPaymentResp
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return gateway.Initiation{}, fmt.Errorf("%w: decode init response: %v", gateway.ErrProviderRejected, err)
	}
	if out.ResponseCode != initSuccessCode || out.PaymentID == "" {
		return gateway.Initiation{}, fmt.Errorf("%w: code %d: %s", gateway.ErrProviderRejected, out.ResponseCode, out.ResponseMessage)
	}

	redirect := url.Values{}
	redirect.Set("id", out.PaymentID)
	redirect.Set("lang", language(gateway.NormalizeLocale(req.Locale)))

	return gateway.Initiation{
		RedirectURL:   c.cfg.BaseURL + payPath + "?" + redirect.Encode(),
		TransactionID: out.PaymentID,
	}, nil
}

// ParseCallback reads the browser return. The provider spells the code field "resposneCode".
func (c *Client) ParseCallback(kind gateway.CallbackKind, params url.Values) (gateway.Notification, error) {
	if kind != gateway.CallbackReturn {
		return gateway.Notification{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCallback, kind)
	}

	paymentID := params.Get("paymentID")
	if paymentID == "" {
		return gateway.Notification{}, fmt.Errorf("%w: paymentID is missing", gateway.ErrMalformedCallback)
	}

	return gateway.Notification{
		Provider:      gateway.ProviderAmeriabank,
		Kind:          kind,
		OrderRef:      params.Get("orderID"),
		TransactionID: paymentID,
		Outcome:       gateway.OutcomePending,
		Fields:        params,
	}, nil
}

type paymentDetailsReq struct {
	PaymentID string `json:"PaymentID"`
	Username  string `json:"Username"`
	Password  string `json:"Password"`
}

type paymentDetailsResp struct {
	Amount          json.Number `json:"Amount"`
	ApprovedAmount  json.Number `json:"ApprovedAmount"`
	Currency        string      `json:"Currency"`
	OrderID         json.Number `json:"OrderID"`
	PaymentState    string      `json:"PaymentState"`
	ResponseCode    string      `json:"ResponseCode"`
	TrxnDescription string      `json:"TrxnDescription"`
}

func (c *Client) VerifyCallback(ctx context.Context, n gateway.Notification) (gateway.Verification, error) {
	body := paymentDetailsReq{
		PaymentID: n.TransactionID,
		Username:  c.cfg.Username,
		Password:  c.cfg.Password,
	}

	resp, err := c.http.PostJSON(ctx, "payment_details", c.cfg.BaseURL+paymentDetailsPath, body)
	if err != nil {
		return gateway.Verification{}, err
	}
	if !resp.OK() {
		if err := transport.Classify("payment_details", resp); !errors.Is(err, gateway.ErrProviderRejected) {
			return gateway.Verification{}, err
		}
		return gateway.Verification{}, fmt.Errorf("%w: payment %s unknown to provider: %s", gateway.ErrAuthenticity, n.TransactionID, resp.Status)
	}

	var out paymentDetailsResp
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return gateway.Verification{}, fmt.Errorf("%w: decode payment details: %v", gateway.ErrProviderUnavailable, err)
	}

	if n.OrderRef != "" && out.OrderID.String() != "" && out.OrderID.String() != n.OrderRef {
		return gateway.Verification{}, fmt.Errorf("%w: order %s does not match payment order %s", gateway.ErrAuthenticity, n.OrderRef, out.OrderID)
	}

	v := gateway.Verification{
		Outcome:       outcome(out),
		TransactionID: n.TransactionID,
	}
	if alpha, ok := gateway.AlphaCurrency(out.Currency); ok {
		v.Currency = alpha
	} else {
		v.Currency = out.Currency
	}
	if amount, err := decimal.NewFromString(out.Amount.String()); err == nil {
		v.Amount = &amount
	}
	return v, nil
}

func outcome(d paymentDetailsResp) gateway.Outcome {
	switch d.PaymentState {
	case "payment_approved", "payment_deposited":
		if d.ResponseCode == detailsSuccessCode {
			return gateway.OutcomePaid
		}
		return gateway.OutcomeFailed
	case "payment_declined":
		return gateway.OutcomeFailed
	case "payment_void", "payment_refunded":
		return gateway.OutcomeCancelled
	default:
		return gateway.OutcomePending
	}
}

func (c *Client) ResolveStrategies() []gateway.ResolveStrategy {
	return []gateway.ResolveStrategy{gateway.ResolveByTransactionID, gateway.ResolveByNumber}
}

func (c *Client) Acknowledge(gateway.CallbackKind, gateway.Disposition) gateway.Ack {
	return gateway.EmptyAck()
}

func language(l gateway.Locale) string {
	switch l {
	case gateway.LocaleRussian:
		return "ru"
	case gateway.LocaleEnglish:
		return "en"
	default:
		return "am"
	}
}
