// Package idram implements the Idram wallet form flow.
//
// Idram posts twice to the result URL: a precheck (EDP_PRECHECK=YES) asking
// whether the bill may be paid, then a confirmation signed with EDP_CHECKSUM.
// Both expect a plain "OK" body.
package idram

import (
	"context"
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"StorefrontPayments/internal/domain/gateway"

	"github.com/shopspring/decimal"
)

const (
	fieldLanguage     = "EDP_LANGUAGE"
	fieldRecAccount   = "EDP_REC_ACCOUNT"
	fieldDescription  = "EDP_DESCRIPTION"
	fieldAmount       = "EDP_AMOUNT"
	fieldBillNo       = "EDP_BILL_NO"
	fieldEmail        = "EDP_EMAIL"
	fieldPrecheck     = "EDP_PRECHECK"
	fieldPayerAccount = "EDP_PAYER_ACCOUNT"
	fieldTransID      = "EDP_TRANS_ID"
	fieldTransDate    = "EDP_TRANS_DATE"
	fieldChecksum     = "EDP_CHECKSUM"

	ackOK       = "OK"
	ackDeclined = "Bill cannot be paid"
)

type Config struct {
	FormURL    string
	RecAccount string
	SecretKey  string
	Email      string
}

type Client struct {
	cfg Config
}

var _ gateway.Adapter = (*Client)(nil)

func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) Provider() gateway.Provider {
	return gateway.ProviderIdram
}

func (c *Client) IsConfigured() bool {
	return c.cfg.FormURL != "" && c.cfg.RecAccount != "" && c.cfg.SecretKey != ""
}

func (c *Client) SupportsCurrency(currency string) bool {
	return strings.EqualFold(currency, "AMD")
}

// BuildInitiation returns the form the storefront auto-submits. No outbound call is made.
func (c *Client) BuildInitiation(_ context.Context, req gateway.InitiationRequest) (gateway.Initiation, error) {
	if !c.SupportsCurrency(req.Currency) {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCurrency, req.Currency)
	}
	if !req.Amount.IsPositive() {
		return gateway.Initiation{}, fmt.Errorf("%w: %s", gateway.ErrInvalidAmount, req.Amount)
	}

	fields := map[string]string{
		fieldLanguage:    language(gateway.NormalizeLocale(req.Locale)),
		fieldRecAccount:  c.cfg.RecAccount,
		fieldDescription: gateway.Description(req.OrderNumber),
		fieldAmount:      req.Amount.String(),
		fieldBillNo:      req.OrderNumber,
	}
	if c.cfg.Email != "" {
		fields[fieldEmail] = c.cfg.Email
	}

	return gateway.Initiation{
		FormAction: c.cfg.FormURL,
		FormData:   fields,
	}, nil
}

func (c *Client) ParseCallback(kind gateway.CallbackKind, params url.Values) (gateway.Notification, error) {
	switch {
	case kind == gateway.CallbackReturn:
		return c.parseReturn(params)
	case kind == gateway.CallbackPrecheck || strings.EqualFold(params.Get(fieldPrecheck), "YES"):
		return c.parsePrecheck(params)
	case kind == gateway.CallbackWebhook:
		return c.parseConfirmation(params)
	default:
		return gateway.Notification{}, fmt.Errorf("%w: %s", gateway.ErrUnsupportedCallback, kind)
	}
}

// parseReturn handles the success and fail pages. They carry nothing trustworthy.
func (c *Client) parseReturn(params url.Values) (gateway.Notification, error) {
	ref := params.Get(fieldBillNo)
	if ref == "" {
		ref = params.Get("order")
	}
	if ref == "" {
		return gateway.Notification{}, fmt.Errorf("%w: bill number is missing", gateway.ErrMalformedCallback)
	}

	return gateway.Notification{
		Provider: gateway.ProviderIdram,
		Kind:     gateway.CallbackReturn,
		OrderRef: ref,
		Outcome:  gateway.OutcomePending,
		Advisory: true,
		Fields:   params,
	}, nil
}

func (c *Client) parsePrecheck(params url.Values) (gateway.Notification, error) {
	if err := requireFields(params, fieldBillNo, fieldRecAccount, fieldAmount); err != nil {
		return gateway.Notification{}, err
	}
	if params.Get(fieldRecAccount) != c.cfg.RecAccount {
		return gateway.Notification{}, fmt.Errorf("%w: unexpected receiver account", gateway.ErrAuthenticity)
	}

	amount, err := decimal.NewFromString(params.Get(fieldAmount))
	if err != nil {
		return gateway.Notification{}, fmt.Errorf("%w: amount %q", gateway.ErrMalformedCallback, params.Get(fieldAmount))
	}

	return gateway.Notification{
		Provider: gateway.ProviderIdram,
		Kind:     gateway.CallbackPrecheck,
		OrderRef: params.Get(fieldBillNo),
		Outcome:  gateway.OutcomePending,
		Amount:   &amount,
		Currency: "AMD",
		Precheck: true,
		Fields:   params,
	}, nil
}

func (c *Client) parseConfirmation(params url.Values) (gateway.Notification, error) {
	err := requireFields(params,
		fieldBillNo, fieldRecAccount, fieldAmount, fieldPayerAccount, fieldTransID, fieldTransDate, fieldChecksum)
	if err != nil {
		return gateway.Notification{}, err
	}

	amount, err := decimal.NewFromString(params.Get(fieldAmount))
	if err != nil {
		return gateway.Notification{}, fmt.Errorf("%w: amount %q", gateway.ErrMalformedCallback, params.Get(fieldAmount))
	}

	// Idram only confirms successful payments.
	return gateway.Notification{
		Provider:      gateway.ProviderIdram,
		Kind:          gateway.CallbackWebhook,
		OrderRef:      params.Get(fieldBillNo),
		TransactionID: params.Get(fieldTransID),
		Outcome:       gateway.OutcomePaid,
		Amount:        &amount,
		Currency:      "AMD",
		Fields:        params,
	}, nil
}

func (c *Client) VerifyCallback(_ context.Context, n gateway.Notification) (gateway.Verification, error) {
	p := n.Fields
	if p.Get(fieldRecAccount) != c.cfg.RecAccount {
		return gateway.Verification{}, fmt.Errorf("%w: unexpected receiver account", gateway.ErrAuthenticity)
	}

	expected := Checksum(c.cfg.SecretKey, p)
	got := strings.ToUpper(p.Get(fieldChecksum))
	if subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		return gateway.Verification{}, fmt.Errorf("%w: checksum mismatch for bill %s", gateway.ErrAuthenticity, p.Get(fieldBillNo))
	}

	return gateway.Verification{
		Outcome:       n.Outcome,
		Amount:        n.Amount,
		Currency:      n.Currency,
		TransactionID: n.TransactionID,
	}, nil
}

// Checksum is the uppercase MD5 of
// EDP_REC_ACCOUNT:EDP_AMOUNT:SECRET_KEY:EDP_BILL_NO:EDP_PAYER_ACCOUNT:EDP_TRANS_ID:EDP_TRANS_DATE.
func Checksum(secretKey string, p url.Values) string {
	raw := strings.Join([]string{
		p.Get(fieldRecAccount),
		p.Get(fieldAmount),
		secretKey,
		p.Get(fieldBillNo),
		p.Get(fieldPayerAccount),
		p.Get(fieldTransID),
		p.Get(fieldTransDate),
	}, ":")
	sum := md5.Sum([]byte(raw))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func (c *Client) ResolveStrategies() []gateway.ResolveStrategy {
	return []gateway.ResolveStrategy{gateway.ResolveByNumber, gateway.ResolveByID}
}

// Acknowledge answers "OK" to every handled confirmation, including rejected ones,
// so Idram stops redelivering.
func (c *Client) Acknowledge(_ gateway.CallbackKind, d gateway.Disposition) gateway.Ack {
	if d == gateway.DispositionPrecheckDeclined {
		return gateway.TextAck(ackDeclined)
	}
	return gateway.TextAck(ackOK)
}

func requireFields(p url.Values, names ...string) error {
	var missing []string
	for _, name := range names {
		if p.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", gateway.ErrMalformedCallback, strings.Join(missing, ", "))
	}
	return nil
}

func language(l gateway.Locale) string {
	switch l {
	case gateway.LocaleRussian:
		return "RU"
	case gateway.LocaleEnglish:
		return "EN"
	default:
		return "AM"
	}
}
