package response

import (
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"
)

type QuoteResponse struct {
	ID             string     `json:"id"`
	QuoteNumber    string     `json:"quote_number"`
	ClientName     string     `json:"client_name"`
	ClientEmail    string     `json:"client_email"`
	ClientCompany  string     `json:"client_company,omitempty"`
	ProjectTitle   string     `json:"project_title"`
	ScopeOfWork    string     `json:"scope_of_work,omitempty"`
	Price          float64    `json:"price"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	SentDate       *time.Time `json:"sent_date,omitempty"`
	ViewedDate     *time.Time `json:"viewed_date,omitempty"`
	AcceptedDate   *time.Time `json:"accepted_date,omitempty"`
	PaidDate       *time.Time `json:"paid_date,omitempty"`
	DeclinedDate   *time.Time `json:"declined_date,omitempty"`
	ClientNotes    string     `json:"client_notes,omitempty"`
	PaymentOrderID string     `json:"payment_order_id,omitempty"`
	CreatedDate    time.Time  `json:"created_date"`
	UpdatedDate    time.Time  `json:"updated_date"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		QuoteNumber:    q.QuoteNumber,
		ClientName:     q.ClientName,
		ClientEmail:    q.ClientEmail,
		ClientCompany:  q.ClientCompany,
		ProjectTitle:   q.ProjectTitle,
		ScopeOfWork:    q.ScopeOfWork,
		Price:          q.Price,
		Currency:       q.Currency,
		Status:         string(q.Status),
		ValidUntil:     q.ValidUntil,
		SentDate:       q.SentDate,
		ViewedDate:     q.ViewedDate,
		AcceptedDate:   q.AcceptedDate,
		PaidDate:       q.PaidDate,
		DeclinedDate:   q.DeclinedDate,
		ClientNotes:    q.ClientNotes,
		PaymentOrderID: q.PaymentOrderID,
		CreatedDate:    q.CreatedAt,
		UpdatedDate:    q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

// PublicQuoteResponse is what the client sees on the quote page. The client email
// and internal order id are left out.
type PublicQuoteResponse struct {
	ID              string     `json:"id"`
	QuoteNumber     string     `json:"quote_number"`
	ClientName      string     `json:"client_name"`
	ClientCompany   string     `json:"client_company,omitempty"`
	ProjectTitle    string     `json:"project_title"`
	ScopeOfWork     string     `json:"scope_of_work,omitempty"`
	Price           float64    `json:"price"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effective_status"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	AcceptedDate    *time.Time `json:"accepted_date,omitempty"`
	PaidDate        *time.Time `json:"paid_date,omitempty"`
	ClientNotes     string     `json:"client_notes,omitempty"`
	IsExpired       bool       `json:"is_expired"`
	CanAccept       bool       `json:"can_accept"`
	CanPay          bool       `json:"can_pay"`
}

func FromPublicQuote(v usecase.PublicQuote) PublicQuoteResponse {
	q := v.Quote
	return PublicQuoteResponse{
		ID:              q.ID,
		QuoteNumber:     q.QuoteNumber,
		ClientName:      q.ClientName,
		ClientCompany:   q.ClientCompany,
		ProjectTitle:    q.ProjectTitle,
		ScopeOfWork:     q.ScopeOfWork,
		Price:           q.Price,
		Currency:        q.Currency,
		Status:          string(q.Status),
		EffectiveStatus: string(v.EffectiveStatus),
		ValidUntil:      q.ValidUntil,
		AcceptedDate:    q.AcceptedDate,
		PaidDate:        q.PaidDate,
		ClientNotes:     q.ClientNotes,
		IsExpired:       v.IsExpired,
		CanAccept:       v.CanAccept,
		CanPay:          v.CanPay,
	}
}

type QuotePaymentSessionResponse struct {
	QuoteID     string  `json:"quote_id"`
	OrderID     string  `json:"order_id"`
	ApprovalURL string  `json:"approval_url"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

func FromQuotePaymentSession(s usecase.QuotePaymentSession) QuotePaymentSessionResponse {
	return QuotePaymentSessionResponse{
		QuoteID:     s.QuoteID,
		OrderID:     s.OrderID,
		ApprovalURL: s.ApprovalURL,
		Amount:      s.Amount,
		Currency:    s.Currency,
	}
}
