package response

import (
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"
)

type ServiceRequestResponse struct {
	ID                string     `json:"id"`
	Kind              string     `json:"kind"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           string     `json:"company,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	AppURL            string     `json:"app_url,omitempty"`
	Platform          string     `json:"platform,omitempty"`
	Details           string     `json:"details,omitempty"`
	AddOns            []string   `json:"add_ons"`
	Hours             int        `json:"hours,omitempty"`
	Attachments       []string   `json:"attachments"`
	PaymentStatus     string     `json:"payment_status"`
	PaymentAmount     float64    `json:"payment_amount"`
	PaymentProvider   string     `json:"payment_provider,omitempty"`
	CheckoutSessionID string     `json:"checkout_session_id,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	Status            string     `json:"status"`
	LeadID            string     `json:"lead_id,omitempty"`
	ServiceSKU        string     `json:"service_sku,omitempty"`
	CreatedDate       time.Time  `json:"created_date"`
	UpdatedDate       time.Time  `json:"updated_date"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	addOns, attachments := r.AddOns, r.Attachments
	if addOns == nil {
		addOns = []string{}
	}
	if attachments == nil {
		attachments = []string{}
	}
	return ServiceRequestResponse{
		ID:                r.ID,
		Kind:              string(r.Kind),
		Name:              r.Name,
		Email:             r.Email,
		Company:           r.Company,
		Phone:             r.Phone,
		AppURL:            r.AppURL,
		Platform:          r.Platform,
		Details:           r.Details,
		AddOns:            addOns,
		Hours:             r.Hours,
		Attachments:       attachments,
		PaymentStatus:     string(r.PaymentStatus.OrDefault()),
		PaymentAmount:     r.PaymentAmount,
		PaymentProvider:   string(r.PaymentProvider),
		CheckoutSessionID: r.CheckoutSessionID,
		PaidAt:            r.PaidAt,
		Status:            string(r.Status),
		LeadID:            r.LeadID,
		ServiceSKU:        r.ServiceSKU,
		CreatedDate:       r.CreatedAt,
		UpdatedDate:       r.UpdatedAt,
	}
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

// CheckoutResponse tells the intake form where to send the client next.
type CheckoutResponse struct {
	RequestID   string  `json:"request_id"`
	CheckoutURL string  `json:"checkout_url"`
	SessionID   string  `json:"session_id"`
	Amount      float64 `json:"amount"`
	Provider    string  `json:"provider"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		RequestID:   r.Request.ID,
		CheckoutURL: r.CheckoutURL,
		SessionID:   r.SessionID,
		Amount:      r.Request.PaymentAmount,
		Provider:    string(r.Request.PaymentProvider),
	}
}
