// Package telcell implements the Telcell Wallet invoice flow: a signed redirect
// to the invoice page and a signed server-to-server result callback.
package telcell

import (
	"context"
	"crypto/md5"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"StorefrontPayments/internal/domain/gateway"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"
)

const (
	actionPostInvoice = "PostInvoice"
	currencyDram      = "֏"

	statusPaid      = "PAID"
	statusRejected  = "REJECTED"
	statusExpired   = "EXPIRED"
	statusCancelled = "CANCELLED"
)

type Config struct {
	BaseURL   string
	ShopID    string
	ShopKey   string
	ValidDays int
}

type Client struct {
	cfg Config
}

var _ gateway.Adapter = (*Client)(nil)

func New(cfg Config) *Client {
	if cfg.ValidDays <= 0 {
		cfg.ValidDays = 1
	}
	return &Client{cfg: cfg}
}

func (c *Client) Provider() gateway.Provider {
	return gateway.ProviderTelcell
}

func (c *Client) IsConfigured() bool {
	return c.cfg.BaseURL != "" && c.cfg.ShopID != "" && c.cfg.ShopKey != ""
}

func (c *Client) SupportsCurrency(currency string) bool {
	return strings.EqualFold(currency, "AMD")
}

type invoiceParams struct {
	Action       string `url:"action"`
	Issuer       string `url:"issuer"`
	Currency     string `url:"currency"`
	Price        string `url:"price"`
	Product      string `url:"product"`
	IssuerID     string `url:"issuer_id"`
	ValidDays    int    `url:"valid_days"`
	Lang         string `url:"lang,omitempty"`
	SecurityCode string `url:"security_code"`
}

// BuildInitiation signs the invoice locally. Telcell allocates its invoice id later.
func (c *Client) BuildInitiation(_ context.Context, req gateway.InitiationRequest) (gateway.Initiation, error) {
	if !c.SupportsCurrency(req.Currency) {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCurrency, req.Currency)
	}
	if !req.Amount.IsPositive() {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrInvalidAmount, req.Amount)
	}

	p := invoiceParams{
		Action:    actionPostInvoice,
		Issuer:    c.cfg.ShopID,
		Currency:  currencyDram,
		Price:     req.Amount.String(),
		Product:   base64.StdEncoding.EncodeToString([]byte(gateway.Description(req.OrderNumber))),
		IssuerID:  EncodeOpaqueID(req.OrderNumber),
		ValidDays: c.cfg.ValidDays,
		Lang:      language(gateway.NormalizeLocale(req.Locale)),
	}
	p.SecurityCode = md5Hex(c.cfg.ShopKey, p.Issuer, p.Currency, p.Price, p.Product, p.IssuerID, strconv.Itoa(p.ValidDays))

	values, err := query.Values(p)
	if err != nil {
		return gateway.Initiation{}, fmt.Errorf("encode invoice params: %w", err)
	}

	return gateway.Initiation{
		RedirectURL: c.cfg.BaseURL + "?" + values.Encode(),
	}, nil
}

func (c *Client) ParseCallback(kind gateway.CallbackKind, params url.Values) (gateway.Notification, error) {
	switch kind {
	case gateway.CallbackReturn:
		ref := params.Get("order")
		if ref == "" {
			ref = params.Get("issuer_id")
		}
		if ref == "" {
			return gateway.Notification{}, fmt.Errorf("%w: order reference is missing", gateway.ErrMalformedCallback)
		}
		return gateway.Notification{
			Provider: gateway.ProviderTelcell,
			Kind:     kind,
			OrderRef: ref,
			Outcome:  gateway.OutcomePending,
			Advisory: true,
			Fields:   params,
		}, nil
	case gateway.CallbackWebhook:
		return c.parseResult(params)
	default:
		return gateway.Notification{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCallback, kind)
	}
}

func (c *Client) parseResult(params url.Values) (gateway.Notification, error) {
	var missing []string
	for _, name := range []string{"invoice", "issuer_id", "payment_id", "currency", "sum", "time", "status", "checksum"} {
		if params.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return gateway.Notification{}, fmt.Errorf("%w: missing %s", gateway.ErrMalformedCallback, strings.Join(missing, ", "))
	}

	var outcome gateway.Outcome
	switch strings.ToUpper(params.Get("status")) {
	case statusPaid:
		outcome = gateway.OutcomePaid
	case statusRejected:
		outcome = gateway.OutcomeFailed
	case statusExpired, statusCancelled:
		outcome = gateway.OutcomeCancelled
	default:
		return gateway.Notification{}, fmt.Errorf("%w: status %q", gateway.ErrMalformedCallback, params.Get("status"))
	}

	amount, err := decimal.NewFromString(params.Get("sum"))
	if err != nil {
		return gateway.Notification{}, fmt.Errorf("%w: sum %q", gateway.ErrMalformedCallback, params.Get("sum"))
	}

	return gateway.Notification{
		Provider:      gateway.ProviderTelcell,
		Kind:          gateway.CallbackWebhook,
		OrderRef:      params.Get("issuer_id"),
		TransactionID: params.Get("invoice"),
		Outcome:       outcome,
		Amount:        &amount,
		Currency:      normalizeCurrency(params.Get("currency")),
		Fields:        params,
	}, nil
}

func (c *Client) VerifyCallback(_ context.Context, n gateway.Notification) (gateway.Verification, error) {
	p := n.Fields
	expected := md5Hex(c.cfg.ShopKey,
		p.Get("invoice"), p.Get("issuer_id"), p.Get("payment_id"), p.Get("currency"),
		p.Get("sum"), p.Get("time"), p.Get("status"))

	got := strings.ToLower(p.Get("checksum"))
	if subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		return gateway.Verification{}, fmt.Errorf("%w: checksum mismatch for invoice %s", gateway.ErrAuthenticity, p.Get("invoice"))
	}

	return gateway.Verification{
		Outcome:       n.Outcome,
		Amount:        n.Amount,
		Currency:      n.Currency,
		TransactionID: n.TransactionID,
	}, nil
}

func (c *Client) ResolveStrategies() []gateway.ResolveStrategy {
	return []gateway.ResolveStrategy{gateway.ResolveByOpaqueID, gateway.ResolveByNumber, gateway.ResolveByID}
}

// Acknowledge always answers an empty 200.
func (c *Client) Acknowledge(gateway.CallbackKind, gateway.Disposition) gateway.Ack {
	return gateway.EmptyAck()
}

// EncodeOpaqueID is the issuer_id encoding Telcell echoes back in its callbacks.
func EncodeOpaqueID(orderNumber string) string {
	return base64.StdEncoding.EncodeToString([]byte(orderNumber))
}

func md5Hex(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(sum[:])
}

func normalizeCurrency(raw string) string {
	switch raw {
	case currencyDram, "AMD", "051":
		return "AMD"
	default:
		return raw
	}
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
