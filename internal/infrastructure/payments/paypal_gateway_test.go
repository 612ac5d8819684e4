package payments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"agencyops/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePayPal struct {
	units    []paypal.PurchaseUnitRequest
	appCtx   *paypal.ApplicationContext
	order    *paypal.Order
	capture  *paypal.CaptureOrderResponse
	verify   *paypal.VerifyWebhookResponse
	verified *http.Request
	body     string
	err      error
}

func (f *fakePayPal) CreateOrder(_ context.Context, _ string, units []paypal.PurchaseUnitRequest, _ *paypal.CreateOrderPayer, appCtx *paypal.ApplicationContext) (*paypal.Order, error) {
	f.units, f.appCtx = units, appCtx
	return f.order, f.err
}

func (f *fakePayPal) CaptureOrder(_ context.Context, _ string, _ paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error) {
	return f.capture, f.err
}

func (f *fakePayPal) VerifyWebhookSignature(_ context.Context, req *http.Request, _ string) (*paypal.VerifyWebhookResponse, error) {
	f.verified = req
	b, _ := io.ReadAll(req.Body)
	f.body = string(b)
	return f.verify, f.err
}

func TestPayPalGateway_CreateOrder(t *testing.T) {
	fake := &fakePayPal{order: &paypal.Order{
		ID:     "ORDER-1",
		Status: "CREATED",
		Links: []paypal.Link{
			{Rel: "self", Href: "https://api.paypal.test/v2/checkout/orders/ORDER-1"},
			{Rel: "approve", Href: "https://paypal.test/approve?token=ORDER-1"},
		},
	}}
	g := &PayPalGateway{api: fake, log: zap.NewNop()}

	o, err := g.CreateOrder(context.Background(), interfaces.OrderInput{
		ReferenceID: "sr1",
		CustomID:    "service_request:sr1",
		Description: "Build sprint (2h)",
		Amount:      150,
		Currency:    "usd",
		ReturnURL:   "https://agency.test/ok",
		CancelURL:   "https://agency.test/cancel",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", o.ID)
	assert.Equal(t, "https://paypal.test/approve?token=ORDER-1", o.ApprovalURL)

	require.Len(t, fake.units, 1)
	assert.Equal(t, "150.00", fake.units[0].Amount.Value)
	assert.Equal(t, "USD", fake.units[0].Amount.Currency)
	assert.Equal(t, "service_request:sr1", fake.units[0].CustomID)
	assert.Equal(t, "https://agency.test/ok", fake.appCtx.ReturnURL)
}

func TestPayPalGateway_CreateOrderWithoutApproval(t *testing.T) {
	fake := &fakePayPal{order: &paypal.Order{ID: "ORDER-1"}}
	g := &PayPalGateway{api: fake, log: zap.NewNop()}

	_, err := g.CreateOrder(context.Background(), interfaces.OrderInput{Amount: 1, Currency: "USD"})
	assert.True(t, errors.Is(err, ErrPayPalApprovalURLMissing))
}

func TestPayPalGateway_CaptureOrder(t *testing.T) {
	fake := &fakePayPal{capture: &paypal.CaptureOrderResponse{
		ID:     "ORDER-1",
		Status: "COMPLETED",
		PurchaseUnits: []paypal.CapturedPurchaseUnit{{
			Payments: &paypal.CapturedPayments{
				Captures: []paypal.CaptureAmount{{
					ID:     "CAP-1",
					Amount: &paypal.PurchaseUnitAmount{Currency: "USD", Value: "5000.00"},
				}},
			},
		}},
	}}
	g := &PayPalGateway{api: fake, log: zap.NewNop()}

	c, err := g.CaptureOrder(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", c.OrderID)
	assert.Equal(t, "COMPLETED", c.Status)
	assert.Equal(t, "CAP-1", c.CaptureID)
	assert.Equal(t, 5000.0, c.Amount)
	assert.Equal(t, "USD", c.Currency)
	assert.NotEmpty(t, c.Raw)
}

func TestPayPalGateway_ParseEvent(t *testing.T) {
	body := []byte(`{"id":"WH-1","event_type":"PAYMENT.CAPTURE.COMPLETED","resource":{"id":"CAP-1","custom_id":"quote:q1","amount":{"value":"5000.00","currency_code":"USD"}}}`)
	headers := http.Header{}
	headers.Set("Paypal-Transmission-Id", "tx-1")

	t.Run("verified", func(t *testing.T) {
		fake := &fakePayPal{verify: &paypal.VerifyWebhookResponse{VerificationStatus: "SUCCESS"}}
		g := &PayPalGateway{api: fake, webhookID: "WH-ID", log: zap.NewNop()}

		ev, err := g.ParseEvent(context.Background(), headers, body)
		require.NoError(t, err)
		assert.Equal(t, "PAYMENT.CAPTURE.COMPLETED", ev.Type)
		assert.Equal(t, "quote:q1", ev.CustomID)
		assert.Equal(t, "CAP-1", ev.CaptureID)
		assert.Equal(t, 5000.0, ev.Amount)
		assert.Equal(t, "tx-1", fake.verified.Header.Get("Paypal-Transmission-Id"))
		assert.JSONEq(t, string(body), fake.body)
	})

	t.Run("rejected", func(t *testing.T) {
		fake := &fakePayPal{verify: &paypal.VerifyWebhookResponse{VerificationStatus: "FAILURE"}}
		g := &PayPalGateway{api: fake, webhookID: "WH-ID", log: zap.NewNop()}

		_, err := g.ParseEvent(context.Background(), headers, body)
		assert.True(t, errors.Is(err, ErrPayPalSignatureRejected))
	})

	t.Run("webhook id missing", func(t *testing.T) {
		g := &PayPalGateway{api: &fakePayPal{}, log: zap.NewNop()}
		_, err := g.ParseEvent(context.Background(), headers, body)
		assert.True(t, errors.Is(err, ErrPayPalNotConfigured))
	})
}

func TestNewPayPalGateway_WithoutCredentials(t *testing.T) {
	g, err := NewPayPalGateway("", "", true, "", nil)
	require.NoError(t, err)

	_, err = g.CreateOrder(context.Background(), interfaces.OrderInput{})
	assert.True(t, errors.Is(err, ErrPayPalNotConfigured))
	_, err = g.CaptureOrder(context.Background(), "ORDER-1")
	assert.True(t, errors.Is(err, ErrPayPalNotConfigured))
}
