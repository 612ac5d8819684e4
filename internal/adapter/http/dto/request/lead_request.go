package request

import "agencyops/internal/usecase"

type LeadRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required"`
	Company    string  `json:"company"`
	Phone      string  `json:"phone"`
	Source     string  `json:"source"`
	ServiceSKU string  `json:"service_sku"`
	Message    string  `json:"message"`
	DealValue  float64 `json:"deal_value"`
	Status     string  `json:"status"`
	// Version is the value last read by the client; 0 skips the conflict check.
	Version int `json:"version"`
}

func (r LeadRequest) ToInput() usecase.LeadInput {
	return usecase.LeadInput{
		Name:       r.Name,
		Email:      r.Email,
		Company:    r.Company,
		Phone:      r.Phone,
		Source:     r.Source,
		ServiceSKU: r.ServiceSKU,
		Message:    r.Message,
		DealValue:  r.DealValue,
		Status:     r.Status,
	}
}

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Company    string `json:"company"`
	Phone      string `json:"phone"`
	ServiceSKU string `json:"service_sku"`
	Message    string `json:"message"`
}

func (r ContactRequest) ToInput() usecase.LeadInput {
	return usecase.LeadInput{
		Name:       r.Name,
		Email:      r.Email,
		Company:    r.Company,
		Phone:      r.Phone,
		ServiceSKU: r.ServiceSKU,
		Message:    r.Message,
	}
}

type LeadStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Version int    `json:"version"`
}

type ConvertLeadRequest struct {
	LeadID      string `json:"lead_id"`
	ProjectType string `json:"project_type"`
}

type PaymentLinkRequest struct {
	LeadID      string  `json:"lead_id"`
	PaymentLink string  `json:"payment_link" binding:"required"`
	Amount      float64 `json:"amount"`
}
