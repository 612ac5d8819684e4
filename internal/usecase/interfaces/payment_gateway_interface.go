package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
)

// IPaymentGateway abstracts direct card payments (Mercado Pago).
//
// The quote payment flow uses it to process a card-token payment and persist the
// provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// CheckoutSessionInput describes a hosted checkout for a single line item.
// Amount is expressed in major units (e.g. dollars).
type CheckoutSessionInput struct {
	ReferenceID   string
	ProductName   string
	Description   string
	Amount        float64
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutSession is the provider-neutral view of a hosted checkout session.
type CheckoutSession struct {
	ID            string
	URL           string
	Status        string // open, complete, expired
	PaymentStatus string // paid, unpaid, no_payment_required
	ReferenceID   string
	PaymentID     string
	Amount        float64
	Currency      string
	Raw           json.RawMessage
}

// CheckoutEvent is a verified webhook notification about a checkout session.
type CheckoutEvent struct {
	ID      string
	Type    string
	Session CheckoutSession
}

// ICheckoutGateway abstracts hosted checkout sessions (Stripe Checkout).
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
	// ParseEvent verifies the signature header against the payload before decoding.
	ParseEvent(payload []byte, signature string) (CheckoutEvent, error)
}

// OrderInput describes an approve-then-capture order.
type OrderInput struct {
	ReferenceID string
	CustomID    string
	Description string
	Amount      float64
	Currency    string
	ReturnURL   string
	CancelURL   string
}

type Order struct {
	ID          string
	Status      string
	ApprovalURL string
}

// OrderCapture is the outcome of capturing an approved order.
type OrderCapture struct {
	OrderID   string
	CaptureID string
	Status    string // COMPLETED when funds were captured
	Amount    float64
	Currency  string
	Raw       json.RawMessage
}

// OrderEvent is a verified webhook notification about a captured payment.
type OrderEvent struct {
	ID        string
	Type      string
	CustomID  string
	CaptureID string
	Amount    float64
	Currency  string
	Raw       json.RawMessage
}

// IOrderGateway abstracts approve-then-capture orders (PayPal).
type IOrderGateway interface {
	CreateOrder(ctx context.Context, in OrderInput) (Order, error)
	CaptureOrder(ctx context.Context, orderID string) (OrderCapture, error)
	ParseEvent(ctx context.Context, headers http.Header, body []byte) (OrderEvent, error)
}
