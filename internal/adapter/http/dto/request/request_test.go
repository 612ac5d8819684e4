package request

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate(" 2026-11-15 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}

	got, err = parseDate("2026-11-15T10:00:00-03:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 13 || got.Location() != time.UTC {
		t.Fatalf("expected UTC normalisation, got %v", got)
	}

	if got, err := parseDate(""); err != nil || got != nil {
		t.Fatalf("blank should be nil, got %v %v", got, err)
	}
	if _, err := parseDate("15/11/2026"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestQuoteRequest_ToInput(t *testing.T) {
	in, err := QuoteRequest{ClientName: "Ana", Price: 5000, ValidUntil: "2026-11-15"}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Price != 5000 || in.ValidUntil == nil {
		t.Fatalf("unexpected input %+v", in)
	}

	if _, err := (QuoteRequest{ValidUntil: "soon"}).ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestResolveProviderPayload(t *testing.T) {
	got, err := ResolveProviderPayload([]byte(`{"mp_payload":{"token":"tok"}}`))
	if err != nil || string(got) != `{"token":"tok"}` {
		t.Fatalf("envelope not unwrapped: %s %v", got, err)
	}

	got, err = ResolveProviderPayload([]byte(`{"token":"tok"}`))
	if err != nil || string(got) != `{"token":"tok"}` {
		t.Fatalf("bare payload not kept: %s %v", got, err)
	}

	got, err = ResolveProviderPayload([]byte("  "))
	if err != nil || string(got) != "{}" {
		t.Fatalf("empty body should be {}: %s %v", got, err)
	}

	for _, bad := range []string{"{", `{"mp_payload":null}`} {
		if _, err := ResolveProviderPayload([]byte(bad)); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload for %s, got %v", bad, err)
		}
	}
}

func TestTaskTemplateRequest_ToInput(t *testing.T) {
	in := TaskTemplateRequest{
		Name:  "Website launch",
		Items: []TaskTemplateItemRequest{{Title: "DNS", Priority: "high"}, {Title: "QA"}},
	}.ToInput()

	if len(in.Items) != 2 || in.Items[0].Priority != "high" || in.Items[1].Priority != "" {
		t.Fatalf("unexpected items %+v", in.Items)
	}
}

func TestServiceRequestRequest_ToInput(t *testing.T) {
	in := ServiceRequestRequest{Kind: "build_sprint", Hours: 2, Amount: 1}.ToInput()
	if in.Hours != 2 || in.ClientAmount != 1 || in.Kind != "build_sprint" {
		t.Fatalf("unexpected input %+v", in)
	}
}
