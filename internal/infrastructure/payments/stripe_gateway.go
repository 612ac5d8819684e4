package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"agencyops/internal/domain/pricing"
	"agencyops/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/zap"
)

var ErrStripeNotConfigured = errors.New("stripe gateway not configured")

// checkoutSessionAPI is the part of *session.Client the gateway calls.
type checkoutSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeGateway creates and inspects Stripe Checkout sessions.
type StripeGateway struct {
	sessions      checkoutSessionAPI
	webhookSecret string
	log           *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, webhookSecret string, logger *zap.Logger) *StripeGateway {
	g := &StripeGateway{webhookSecret: webhookSecret, log: named(logger, "stripe")}
	if secretKey != "" {
		g.sessions = &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey}
	}
	return g
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in interfaces.CheckoutSessionInput) (interfaces.CheckoutSession, error) {
	if g.sessions == nil {
		return interfaces.CheckoutSession{}, ErrStripeNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(in.SuccessURL),
		CancelURL:         stripe.String(in.CancelURL),
		ClientReferenceID: stripe.String(in.ReferenceID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(strings.ToLower(in.Currency)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(in.ProductName),
				},
				UnitAmount: stripe.Int64(pricing.ToMinorUnits(in.Amount)),
			},
			Quantity: stripe.Int64(1),
		}},
	}
	if in.Description != "" {
		params.LineItems[0].PriceData.ProductData.Description = stripe.String(in.Description)
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	s, err := g.sessions.New(params)
	if err != nil {
		g.log.Error("checkout session create failed", zap.String("reference_id", in.ReferenceID), zap.Error(err))
		return interfaces.CheckoutSession{}, err
	}
	g.log.Info("checkout session created", zap.String("session_id", s.ID), zap.String("reference_id", in.ReferenceID))
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (interfaces.CheckoutSession, error) {
	if g.sessions == nil {
		return interfaces.CheckoutSession{}, ErrStripeNotConfigured
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) ParseEvent(payload []byte, signature string) (interfaces.CheckoutEvent, error) {
	if g.webhookSecret == "" {
		return interfaces.CheckoutEvent{}, ErrStripeNotConfigured
	}

	ev, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return interfaces.CheckoutEvent{}, err
	}

	out := interfaces.CheckoutEvent{ID: ev.ID, Type: string(ev.Type)}
	if !strings.HasPrefix(out.Type, "checkout.session.") || ev.Data == nil {
		return out, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("decode checkout session: %w", err)
	}
	out.Session = toCheckoutSession(&s)
	out.Session.Raw = ev.Data.Raw
	return out, nil
}

func toCheckoutSession(s *stripe.CheckoutSession) interfaces.CheckoutSession {
	out := interfaces.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		ReferenceID:   s.ClientReferenceID,
		Amount:        pricing.FromMinorUnits(s.AmountTotal),
		Currency:      strings.ToUpper(string(s.Currency)),
	}
	if s.PaymentIntent != nil {
		out.PaymentID = s.PaymentIntent.ID
	}
	if out.ReferenceID == "" && s.Metadata != nil {
		out.ReferenceID = s.Metadata["request_id"]
	}
	if raw, err := json.Marshal(s); err == nil {
		out.Raw = raw
	}
	return out
}
