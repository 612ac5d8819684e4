package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"agencyops/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

type fakeSessions struct {
	created *stripe.CheckoutSessionParams
	getID   string
	session *stripe.CheckoutSession
	err     error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.created = params
	return f.session, f.err
}

func (f *fakeSessions) Get(id string, _ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.getID = id
	return f.session, f.err
}

func signStripePayload(secret string, payload []byte, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.%s", ts.Unix(), payload)))
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	fake := &fakeSessions{session: &stripe.CheckoutSession{
		ID:          "cs_1",
		URL:         "https://checkout.stripe.test/cs_1",
		Status:      stripe.CheckoutSessionStatusOpen,
		AmountTotal: 39800,
		Currency:    stripe.CurrencyUSD,
	}}
	g := &StripeGateway{sessions: fake, log: zap.NewNop()}

	got, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionInput{
		ReferenceID:   "sr1",
		ProductName:   "App Review",
		Description:   "App review + video walkthrough",
		Amount:        398,
		Currency:      "USD",
		CustomerEmail: "ana@example.com",
		SuccessURL:    "https://agency.test/ok",
		CancelURL:     "https://agency.test/cancel",
		Metadata:      map[string]string{"request_id": "sr1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_1", got.ID)
	assert.Equal(t, "https://checkout.stripe.test/cs_1", got.URL)
	assert.Equal(t, 398.0, got.Amount)
	assert.Equal(t, "USD", got.Currency)

	p := fake.created
	require.NotNil(t, p)
	assert.Equal(t, "payment", *p.Mode)
	assert.Equal(t, "sr1", *p.ClientReferenceID)
	assert.Equal(t, "ana@example.com", *p.CustomerEmail)
	require.Len(t, p.LineItems, 1)
	assert.Equal(t, int64(39800), *p.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "usd", *p.LineItems[0].PriceData.Currency)
	assert.Equal(t, "sr1", p.Metadata["request_id"])
	assert.NotNil(t, p.Context)
}

func TestStripeGateway_GetCheckoutSession(t *testing.T) {
	fake := &fakeSessions{session: &stripe.CheckoutSession{
		ID:                "cs_1",
		Status:            stripe.CheckoutSessionStatusComplete,
		PaymentStatus:     stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal:       99900,
		Currency:          stripe.CurrencyUSD,
		PaymentIntent:     &stripe.PaymentIntent{ID: "pi_1"},
		Metadata:          map[string]string{"request_id": "sr9"},
		ClientReferenceID: "",
	}}
	g := &StripeGateway{sessions: fake, log: zap.NewNop()}

	got, err := g.GetCheckoutSession(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "cs_1", fake.getID)
	assert.Equal(t, "paid", got.PaymentStatus)
	assert.Equal(t, "complete", got.Status)
	assert.Equal(t, "pi_1", got.PaymentID)
	assert.Equal(t, "sr9", got.ReferenceID)
	assert.Equal(t, 999.0, got.Amount)
	assert.NotEmpty(t, got.Raw)
}

func TestStripeGateway_NotConfigured(t *testing.T) {
	g := NewStripeGateway("", "", nil)

	_, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionInput{})
	assert.True(t, errors.Is(err, ErrStripeNotConfigured))
	_, err = g.GetCheckoutSession(context.Background(), "cs_1")
	assert.True(t, errors.Is(err, ErrStripeNotConfigured))
	_, err = g.ParseEvent([]byte(`{}`), "t=1,v1=00")
	assert.True(t, errors.Is(err, ErrStripeNotConfigured))
}

func TestStripeGateway_ParseEvent(t *testing.T) {
	const secret = "whsec_test"
	g := NewStripeGateway("", secret, nil)
	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"api_version": "2020-08-27",
		"data": {"object": {
			"id": "cs_1",
			"object": "checkout.session",
			"client_reference_id": "sr1",
			"payment_status": "paid",
			"status": "complete",
			"amount_total": 99900,
			"currency": "usd",
			"payment_intent": "pi_1"
		}}
	}`)

	t.Run("valid signature", func(t *testing.T) {
		ev, err := g.ParseEvent(payload, signStripePayload(secret, payload, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, "evt_1", ev.ID)
		assert.Equal(t, "checkout.session.completed", ev.Type)
		assert.Equal(t, "cs_1", ev.Session.ID)
		assert.Equal(t, "sr1", ev.Session.ReferenceID)
		assert.Equal(t, "paid", ev.Session.PaymentStatus)
		assert.Equal(t, "pi_1", ev.Session.PaymentID)
		assert.Equal(t, 999.0, ev.Session.Amount)
		assert.Equal(t, "USD", ev.Session.Currency)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := g.ParseEvent(payload, signStripePayload("whsec_other", payload, time.Now()))
		assert.Error(t, err)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		_, err := g.ParseEvent(payload, signStripePayload(secret, payload, time.Now().Add(-time.Hour)))
		assert.Error(t, err)
	})

	t.Run("non checkout events carry no session", func(t *testing.T) {
		other := []byte(`{"id":"evt_2","object":"event","type":"charge.refunded","api_version":"2020-08-27","data":{"object":{"id":"ch_1"}}}`)
		ev, err := g.ParseEvent(other, signStripePayload(secret, other, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, "charge.refunded", ev.Type)
		assert.Empty(t, ev.Session.ID)
	})
}
