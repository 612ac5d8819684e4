package response

import (
	"time"

	"agencyops/internal/domain/entities"
)

type LeadResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           string     `json:"company,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Source            string     `json:"source,omitempty"`
	ServiceSKU        string     `json:"service_sku,omitempty"`
	Message           string     `json:"message,omitempty"`
	DealValue         float64    `json:"deal_value"`
	Status            string     `json:"status"`
	PaymentStatus     string     `json:"payment_status,omitempty"`
	PaymentLink       string     `json:"payment_link,omitempty"`
	PaymentLinkSentAt *time.Time `json:"payment_link_sent_at,omitempty"`
	LastReminderAt    *time.Time `json:"last_reminder_at,omitempty"`
	ReminderCount     int        `json:"reminder_count"`
	ProjectID         string     `json:"project_id,omitempty"`
	Version           int        `json:"version"`
	CreatedDate       time.Time  `json:"created_date"`
	UpdatedDate       time.Time  `json:"updated_date"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:                l.ID,
		Name:              l.Name,
		Email:             l.Email,
		Company:           l.Company,
		Phone:             l.Phone,
		Source:            l.Source,
		ServiceSKU:        l.ServiceSKU,
		Message:           l.Message,
		DealValue:         l.DealValue,
		Status:            string(l.Status),
		PaymentStatus:     string(l.PaymentStatus),
		PaymentLink:       l.PaymentLink,
		PaymentLinkSentAt: l.PaymentLinkSentAt,
		LastReminderAt:    l.LastReminderAt,
		ReminderCount:     l.ReminderCount,
		ProjectID:         l.ProjectID,
		Version:           l.Version,
		CreatedDate:       l.CreatedAt,
		UpdatedDate:       l.UpdatedAt,
	}
}

func FromLeads(ls []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLead(l))
	}
	return out
}
