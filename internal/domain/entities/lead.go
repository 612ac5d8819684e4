package entities

import (
	"fmt"
	"time"
)

// LeadStatus is the CRM pipeline stage. Admins move leads freely between stages.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusProposal    LeadStatus = "Proposal"
	LeadStatusNegotiation LeadStatus = "Negotiation"
	LeadStatusWon         LeadStatus = "Won"
	LeadStatusLost        LeadStatus = "Lost"
)

var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusNegotiation,
	LeadStatusWon,
	LeadStatusLost,
}

func ParseLeadStatus(s string) (LeadStatus, error) {
	for _, st := range LeadStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown lead status %q", s)
}

// LeadPaymentStatus tracks an outstanding payment link sent to a lead.
type LeadPaymentStatus string

const (
	LeadPaymentNone      LeadPaymentStatus = ""
	LeadPaymentPending   LeadPaymentStatus = "pending"
	LeadPaymentCompleted LeadPaymentStatus = "completed"
	LeadPaymentStale     LeadPaymentStatus = "stale"
)

// Lead is a sales pipeline record for a prospective client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_status-index): payment_status (sparse: only leads with a payment link)
//
// ProjectID points at the project created by conversion; it is set at most once.
type Lead struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Company           string            `json:"company,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Source            string            `json:"source,omitempty"`
	ServiceSKU        string            `json:"service_sku,omitempty"`
	Message           string            `json:"message,omitempty"`
	DealValue         float64           `json:"deal_value"`
	Status            LeadStatus        `json:"status"`
	PaymentStatus     LeadPaymentStatus `json:"payment_status,omitempty"`
	PaymentLink       string            `json:"payment_link,omitempty"`
	PaymentLinkSentAt *time.Time        `json:"payment_link_sent_at,omitempty"`
	LastReminderAt    *time.Time        `json:"last_reminder_at,omitempty"`
	ReminderCount     int               `json:"reminder_count"`
	ProjectID         string            `json:"project_id,omitempty"`
	Version           int               `json:"version"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsConverted reports whether the lead already produced a project.
func (l Lead) IsConverted() bool {
	return l.ProjectID != ""
}
