package entities

import (
	"errors"
	"fmt"
	"time"
)

// QuoteStatus represents the lifecycle of a sales quote.
//
// Domain notes:
//   - draft -> sent -> viewed -> accepted -> paid is the forward path.
//   - declined is an absorbing state reachable from any non-terminal status.
//   - expired is never stored: it is derived from ValidUntil at read time.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusPaid     QuoteStatus = "paid"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

var ErrInvalidQuoteStatus = errors.New("invalid quote status")

// QuoteStatuses lists every value a quote status may hold, in lifecycle order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusDraft,
	QuoteStatusSent,
	QuoteStatusViewed,
	QuoteStatusAccepted,
	QuoteStatusPaid,
	QuoteStatusDeclined,
	QuoteStatusExpired,
}

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:    {QuoteStatusSent, QuoteStatusAccepted, QuoteStatusDeclined},
	QuoteStatusSent:     {QuoteStatusSent, QuoteStatusViewed, QuoteStatusAccepted, QuoteStatusDeclined},
	QuoteStatusViewed:   {QuoteStatusSent, QuoteStatusAccepted, QuoteStatusDeclined},
	QuoteStatusAccepted: {QuoteStatusAccepted, QuoteStatusPaid, QuoteStatusDeclined},
}

func ParseQuoteStatus(s string) (QuoteStatus, error) {
	for _, st := range QuoteStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidQuoteStatus, s)
}

// IsTerminal reports whether no further transition is possible.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusPaid || s == QuoteStatusDeclined
}

// CanTransitionTo reports whether a stored quote may move from s to next.
// Expired is derived and is never a valid stored target.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Quote is a priced scope-of-work shared with a client for acceptance and payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_number-index): quote_number
//
// Monetary representation:
//   - Price is persisted as its shortest exact decimal string, so it round-trips unchanged.
type Quote struct {
	ID             string      `json:"id"`
	QuoteNumber    string      `json:"quote_number"`
	ClientName     string      `json:"client_name"`
	ClientEmail    string      `json:"client_email"`
	ClientCompany  string      `json:"client_company"`
	ProjectTitle   string      `json:"project_title"`
	ScopeOfWork    string      `json:"scope_of_work"`
	Price          float64     `json:"price"`
	Currency       string      `json:"currency"`
	Status         QuoteStatus `json:"status"`
	ValidUntil     *time.Time  `json:"valid_until,omitempty"`
	SentDate       *time.Time  `json:"sent_date,omitempty"`
	ViewedDate     *time.Time  `json:"viewed_date,omitempty"`
	AcceptedDate   *time.Time  `json:"accepted_date,omitempty"`
	PaidDate       *time.Time  `json:"paid_date,omitempty"`
	DeclinedDate   *time.Time  `json:"declined_date,omitempty"`
	ClientNotes    string      `json:"client_notes,omitempty"`
	PaymentOrderID string      `json:"payment_order_id,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// IsExpired reports whether the quote's validity window has passed.
// It ignores the stored status on purpose: a paid quote is still "expired" for display.
func (q Quote) IsExpired(now time.Time) bool {
	return q.ValidUntil != nil && q.ValidUntil.Before(now)
}

// EffectiveStatus is the status shown to readers: stored non-terminal quotes past
// their validity window read as expired.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if !q.Status.IsTerminal() && q.IsExpired(now) {
		return QuoteStatusExpired
	}
	return q.Status
}

// CanAccept reports whether the client may accept the quote right now.
func (q Quote) CanAccept(now time.Time) bool {
	return !q.IsExpired(now) && q.Status.CanTransitionTo(QuoteStatusAccepted)
}

// CanPay reports whether a payment may be started. Expiry does not block payment
// of an already accepted quote.
func (q Quote) CanPay() bool {
	return q.Status == QuoteStatusAccepted
}
