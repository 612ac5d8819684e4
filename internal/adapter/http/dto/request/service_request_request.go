package request

import "agencyops/internal/usecase"

// ServiceRequestRequest is the public intake form of the fixed-price services.
// Amount is what the client displayed; it is only compared against the server price.
type ServiceRequestRequest struct {
	Kind     string   `json:"kind" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Company  string   `json:"company"`
	Phone    string   `json:"phone"`
	AppURL   string   `json:"app_url"`
	Platform string   `json:"platform"`
	Details  string   `json:"details"`
	AddOns   []string `json:"add_ons"`
	Hours    int      `json:"hours"`
	Amount   float64  `json:"amount"`
}

func (r ServiceRequestRequest) ToInput() usecase.ServiceRequestInput {
	return usecase.ServiceRequestInput{
		Kind:         r.Kind,
		Name:         r.Name,
		Email:        r.Email,
		Company:      r.Company,
		Phone:        r.Phone,
		AppURL:       r.AppURL,
		Platform:     r.Platform,
		Details:      r.Details,
		AddOns:       r.AddOns,
		Hours:        r.Hours,
		ClientAmount: r.Amount,
	}
}

type ConfirmStripeRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type CaptureOrderRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Token     string `json:"token" binding:"required"`
}
