package response

import (
	"encoding/json"
	"testing"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.Payment{
		ID:                 "pay-1",
		SubjectType:        entities.PaymentSubjectQuote,
		SubjectID:          "q1",
		Provider:           entities.PaymentProviderMercadoPago,
		Amount:             5000,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.SubjectID != "q1" || res.SubjectType != "quote" || res.Status != "approved" || res.Provider != "mercadopago" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}
}

func TestFromServiceRequest_DefaultsPaymentStatus(t *testing.T) {
	res := FromServiceRequest(entities.ServiceRequest{ID: "sr1", Kind: entities.ServiceKindBaseCMS})
	if res.PaymentStatus != "pending" {
		t.Fatalf("expected pending, got %q", res.PaymentStatus)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["add_ons"].([]any); !ok {
		t.Fatalf("add_ons should render as an empty list: %s", b)
	}
}

func TestFromPublicQuote_HidesPrivateFields(t *testing.T) {
	res := FromPublicQuote(usecase.PublicQuote{
		Quote: entities.Quote{
			ID:             "q1",
			ClientEmail:    "ana@example.com",
			PaymentOrderID: "ORDER-1",
			Status:         entities.QuoteStatusAccepted,
			Price:          5000,
		},
		EffectiveStatus: entities.QuoteStatusAccepted,
		IsExpired:       true,
		CanPay:          true,
	})

	b, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["client_email"]; ok {
		t.Fatalf("client_email must not be public: %s", b)
	}
	if _, ok := body["payment_order_id"]; ok {
		t.Fatalf("payment_order_id must not be public: %s", b)
	}
	if body["is_expired"] != true || body["can_accept"] != false || body["can_pay"] != true {
		t.Fatalf("unexpected flags: %s", b)
	}
	if body["price"] != 5000.0 {
		t.Fatalf("unexpected price: %s", b)
	}
}

func TestFromLeadAndProject(t *testing.T) {
	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	l := FromLead(entities.Lead{ID: "l1", Status: entities.LeadStatusWon, Version: 3, CreatedAt: created})
	if l.Status != "Won" || l.Version != 3 || !l.CreatedDate.Equal(created) {
		t.Fatalf("unexpected lead response %+v", l)
	}

	p := FromProject(entities.Project{ID: "p1", Status: entities.ProjectStatusPlanning, LeadID: "l1"})
	if p.Status != "Planning" || p.LeadID != "l1" {
		t.Fatalf("unexpected project response %+v", p)
	}
}

func TestFromTaskTemplate_EmptyItems(t *testing.T) {
	res := FromTaskTemplate(entities.TaskTemplate{ID: "tpl1"})
	if res.Items == nil {
		t.Fatalf("items should never be null")
	}
}
