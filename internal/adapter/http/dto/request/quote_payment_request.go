package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidProviderPayload = errors.New("invalid provider payload")

// QuoteDirectPaymentRequest is the payload for paying a quote with a Mercado Pago card token.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// A bare Mercado Pago body without the envelope is accepted too.
type QuoteDirectPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ResolveProviderPayload extracts the provider payload from a raw request body.
func ResolveProviderPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidProviderPayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrInvalidProviderPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
