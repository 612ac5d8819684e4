package entities

import (
	"fmt"
	"time"
)

// ServiceKind discriminates the fixed-price service request family.
type ServiceKind string

const (
	ServiceKindAppReview        ServiceKind = "app_review"
	ServiceKindBuildSprint      ServiceKind = "build_sprint"
	ServiceKindMobileConversion ServiceKind = "mobile_conversion"
	ServiceKindAppFoundation    ServiceKind = "app_foundation"
	ServiceKindBaseCMS          ServiceKind = "base_cms"
)

var ServiceKinds = []ServiceKind{
	ServiceKindAppReview,
	ServiceKindBuildSprint,
	ServiceKindMobileConversion,
	ServiceKindAppFoundation,
	ServiceKindBaseCMS,
}

func ParseServiceKind(s string) (ServiceKind, error) {
	for _, k := range ServiceKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown service kind %q", s)
}

// RequestPaymentStatus tracks whether a service request has been paid for.
type RequestPaymentStatus string

const (
	RequestPaymentPending   RequestPaymentStatus = "pending"
	RequestPaymentCompleted RequestPaymentStatus = "completed"
	RequestPaymentFailed    RequestPaymentStatus = "failed"
)

// OrDefault maps an unset status to pending so readers never see an empty value.
func (s RequestPaymentStatus) OrDefault() RequestPaymentStatus {
	if s == "" {
		return RequestPaymentPending
	}
	return s
}

// RequestWorkStatus tracks the delivery work behind a paid request.
type RequestWorkStatus string

const (
	RequestWorkNew        RequestWorkStatus = "new"
	RequestWorkInProgress RequestWorkStatus = "in_progress"
	RequestWorkCompleted  RequestWorkStatus = "completed"
)

// ServiceRequest is a public intake submission for one fixed-price service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (checkout_session_id-index): checkout_session_id
//
// PaymentAmount is always computed server-side from the pricing catalog.
type ServiceRequest struct {
	ID                string               `json:"id"`
	Kind              ServiceKind          `json:"kind"`
	Name              string               `json:"name"`
	Email             string               `json:"email"`
	Company           string               `json:"company,omitempty"`
	Phone             string               `json:"phone,omitempty"`
	AppURL            string               `json:"app_url,omitempty"`
	Platform          string               `json:"platform,omitempty"`
	Details           string               `json:"details,omitempty"`
	AddOns            []string             `json:"add_ons,omitempty"`
	Hours             int                  `json:"hours,omitempty"`
	Attachments       []string             `json:"attachments,omitempty"`
	PaymentStatus     RequestPaymentStatus `json:"payment_status"`
	PaymentAmount     float64              `json:"payment_amount"`
	PaymentProvider   PaymentProvider      `json:"payment_provider,omitempty"`
	CheckoutSessionID string               `json:"checkout_session_id,omitempty"`
	PaidAt            *time.Time           `json:"paid_at,omitempty"`
	Status            RequestWorkStatus    `json:"status"`
	LeadID            string               `json:"lead_id,omitempty"`
	ServiceSKU        string               `json:"service_sku,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// IsPaid reports whether the processor confirmed payment.
func (r ServiceRequest) IsPaid() bool {
	return r.PaymentStatus == RequestPaymentCompleted
}
