package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"agencyops/internal/domain/entities"
)

// paymentReference is the custom id attached to processor orders so a webhook
// can find the entity it settles, e.g. "quote:3f2a..." or "service_request:9b1c...".
func paymentReference(subject entities.PaymentSubjectType, id string) string {
	return string(subject) + ":" + id
}

func parsePaymentReference(ref string) (entities.PaymentSubjectType, string, bool) {
	subject, id, ok := strings.Cut(strings.TrimSpace(ref), ":")
	if !ok || id == "" {
		return "", "", false
	}
	switch entities.PaymentSubjectType(subject) {
	case entities.PaymentSubjectQuote, entities.PaymentSubjectServiceRequest:
		return entities.PaymentSubjectType(subject), id, true
	}
	return "", "", false
}

// newPayment builds a ledger entry. The parsed payload is best effort: non-object
// bodies are kept only in raw form.
func newPayment(at time.Time, subjectID string, subject entities.PaymentSubjectType, provider entities.PaymentProvider, providerID string, amount float64, currency string, status entities.PaymentStatus, raw json.RawMessage) entities.Payment {
	var parsed map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	return entities.Payment{
		ID:                 providerID,
		SubjectType:        subject,
		SubjectID:          subjectID,
		Provider:           provider,
		Amount:             amount,
		Currency:           currency,
		Date:               at,
		Status:             status,
		ProviderPayloadRaw: raw,
		ProviderPayload:    parsed,
	}
}
