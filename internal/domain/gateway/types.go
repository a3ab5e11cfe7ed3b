package gateway

import (
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

type InitiationRequest struct {
	OrderID     string
	OrderNumber string
	PaymentID   string
	Amount      decimal.Decimal
	Currency    string
	Locale      string

	// ReturnURL is sent by the card acquirers. Idram and Telcell read their
	// success, fail and result URLs from the merchant panel.
	ReturnURL string
}

// Initiation is either a redirect or a form the browser has to submit.
type Initiation struct {
	RedirectURL string            `json:"redirectUrl,omitempty"`
	FormAction  string            `json:"formAction,omitempty"`
	FormData    map[string]string `json:"formData,omitempty"`

	// TransactionID is the provider-allocated id, empty when the provider allocates none at init.
	TransactionID string `json:"-"`
}

type CallbackKind string

const (
	CallbackReturn   CallbackKind = "return"
	CallbackWebhook  CallbackKind = "webhook"
	CallbackPrecheck CallbackKind = "precheck"
)

type Outcome string

const (
	OutcomePaid      Outcome = "paid"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
	// OutcomePending means the provider has not decided yet.
	OutcomePending Outcome = "pending"
)

// Notification is a provider callback normalized by its adapter.
type Notification struct {
	Provider      Provider
	Kind          CallbackKind
	OrderRef      string
	TransactionID string
	Outcome       Outcome
	Amount        *decimal.Decimal
	Currency      string

	// Precheck asks whether the order may be paid; it never changes state.
	Precheck bool
	// Advisory callbacks only pick a page for the shopper.
	Advisory bool

	Fields url.Values
}

type Verification struct {
	Outcome       Outcome
	Amount        *decimal.Decimal
	Currency      string
	TransactionID string
}

type ResolveStrategy string

const (
	ResolveByNumber        ResolveStrategy = "number"
	ResolveByID            ResolveStrategy = "id"
	ResolveByOpaqueID      ResolveStrategy = "opaque_id"
	ResolveByTransactionID ResolveStrategy = "transaction_id"
)

type Disposition string

const (
	DispositionSettled          Disposition = "settled"
	DispositionAlreadySettled   Disposition = "already_settled"
	DispositionPending          Disposition = "pending"
	DispositionIgnored          Disposition = "ignored"
	DispositionRejected         Disposition = "rejected"
	DispositionPrecheckAccepted Disposition = "precheck_accepted"
	DispositionPrecheckDeclined Disposition = "precheck_declined"
)

// Ack is the body a provider expects back from a server-to-server callback.
type Ack struct {
	Status      int
	ContentType string
	Body        string
}

func EmptyAck() Ack {
	return Ack{Status: http.StatusOK}
}

func TextAck(body string) Ack {
	return Ack{Status: http.StatusOK, ContentType: "text/plain; charset=utf-8", Body: body}
}
