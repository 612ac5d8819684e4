package request

import "agencyops/internal/usecase"

// QuoteRequest is the admin payload for creating or editing a quote.
type QuoteRequest struct {
	ClientName    string  `json:"client_name" binding:"required"`
	ClientEmail   string  `json:"client_email" binding:"required"`
	ClientCompany string  `json:"client_company"`
	ProjectTitle  string  `json:"project_title" binding:"required"`
	ScopeOfWork   string  `json:"scope_of_work"`
	Price         float64 `json:"price" binding:"required"`
	Currency      string  `json:"currency"`
	ValidUntil    string  `json:"valid_until"`
}

func (r QuoteRequest) ToInput() (usecase.QuoteInput, error) {
	validUntil, err := parseDate(r.ValidUntil)
	if err != nil {
		return usecase.QuoteInput{}, err
	}
	return usecase.QuoteInput{
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientCompany: r.ClientCompany,
		ProjectTitle:  r.ProjectTitle,
		ScopeOfWork:   r.ScopeOfWork,
		Price:         r.Price,
		Currency:      r.Currency,
		ValidUntil:    validUntil,
	}, nil
}

// QuoteDecisionRequest carries the client's notes on accept or decline.
type QuoteDecisionRequest struct {
	Notes string `json:"notes"`
}

type QuoteCaptureRequest struct {
	Token string `json:"token" binding:"required"`
}

// QuoteIDRequest is the payload of the quote payment functions.
type QuoteIDRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
	Token   string `json:"token"`
}
