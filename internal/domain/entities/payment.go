package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the processor outcome of a recorded payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentProvider identifies the processor that handled a charge.
type PaymentProvider string

const (
	PaymentProviderStripe      PaymentProvider = "stripe"
	PaymentProviderPayPal      PaymentProvider = "paypal"
	PaymentProviderMercadoPago PaymentProvider = "mercadopago"
)

// PaymentSubjectType names the entity a payment settles.
type PaymentSubjectType string

const (
	PaymentSubjectQuote          PaymentSubjectType = "quote"
	PaymentSubjectServiceRequest PaymentSubjectType = "service_request"
)

// Payment is the ledger record written whenever a processor confirms a charge.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment/capture id)
//   - GSI1 (subject_id-index): subject_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original processor body (JSON) for traceability/audit.
//   - ProviderPayload is the parsed representation, useful for querying/debugging.
type Payment struct {
	ID          string             `json:"id"`
	SubjectType PaymentSubjectType `json:"subject_type"`
	SubjectID   string             `json:"subject_id"`
	Provider    PaymentProvider    `json:"provider"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	Date        time.Time          `json:"date"`
	Status      PaymentStatus      `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
