package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"agencyops/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
	"go.uber.org/zap"
)

var (
	ErrPayPalNotConfigured      = errors.New("paypal gateway not configured")
	ErrPayPalSignatureRejected  = errors.New("paypal webhook signature rejected")
	ErrPayPalApprovalURLMissing = errors.New("paypal order has no approval link")
)

const paypalVerificationSuccess = "SUCCESS"

// paypalAPI is the part of *paypal.Client the gateway calls.
type paypalAPI interface {
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
	VerifyWebhookSignature(ctx context.Context, httpReq *http.Request, webhookID string) (*paypal.VerifyWebhookResponse, error)
}

// PayPalGateway creates and captures PayPal orders.
type PayPalGateway struct {
	api       paypalAPI
	webhookID string
	log       *zap.Logger
}

var _ interfaces.IOrderGateway = (*PayPalGateway)(nil)

// NewPayPalGateway returns an unconfigured gateway when credentials are missing;
// every call on it fails with ErrPayPalNotConfigured.
func NewPayPalGateway(clientID, secret string, sandbox bool, webhookID string, logger *zap.Logger) (*PayPalGateway, error) {
	g := &PayPalGateway{webhookID: webhookID, log: named(logger, "paypal")}
	if clientID == "" || secret == "" {
		return g, nil
	}

	base := paypal.APIBaseLive
	if sandbox {
		base = paypal.APIBaseSandBox
	}
	c, err := paypal.NewClient(clientID, secret, base)
	if err != nil {
		return nil, err
	}
	g.api = c
	g.log.Info("client initialized", zap.Bool("sandbox", sandbox))
	return g, nil
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, in interfaces.OrderInput) (interfaces.Order, error) {
	if g.api == nil {
		return interfaces.Order{}, ErrPayPalNotConfigured
	}

	units := []paypal.PurchaseUnitRequest{{
		ReferenceID: in.ReferenceID,
		CustomID:    in.CustomID,
		Description: in.Description,
		Amount: &paypal.PurchaseUnitAmount{
			Currency: strings.ToUpper(in.Currency),
			Value:    formatAmount(in.Amount),
		},
	}}
	appCtx := &paypal.ApplicationContext{
		ReturnURL:  in.ReturnURL,
		CancelURL:  in.CancelURL,
		UserAction: "PAY_NOW",
	}

	o, err := g.api.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, appCtx)
	if err != nil {
		g.log.Error("create order failed", zap.String("reference_id", in.ReferenceID), zap.Error(err))
		return interfaces.Order{}, err
	}

	out := interfaces.Order{ID: o.ID, Status: o.Status}
	for _, l := range o.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			out.ApprovalURL = l.Href
			break
		}
	}
	if out.ApprovalURL == "" {
		return interfaces.Order{}, fmt.Errorf("%w: order %s", ErrPayPalApprovalURLMissing, o.ID)
	}
	g.log.Info("order created", zap.String("order_id", o.ID), zap.String("reference_id", in.ReferenceID))
	return out, nil
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (interfaces.OrderCapture, error) {
	if g.api == nil {
		return interfaces.OrderCapture{}, ErrPayPalNotConfigured
	}

	resp, err := g.api.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		g.log.Error("capture failed", zap.String("order_id", orderID), zap.Error(err))
		return interfaces.OrderCapture{}, err
	}

	out := interfaces.OrderCapture{OrderID: resp.ID, Status: resp.Status}
	for _, pu := range resp.PurchaseUnits {
		if pu.Payments == nil {
			continue
		}
		for _, c := range pu.Payments.Captures {
			out.CaptureID = c.ID
			if c.Amount != nil {
				out.Amount = parseAmount(c.Amount.Value)
				out.Currency = c.Amount.Currency
			}
			break
		}
		if out.CaptureID != "" {
			break
		}
	}
	if raw, err := json.Marshal(resp); err == nil {
		out.Raw = raw
	}
	g.log.Info("order captured", zap.String("order_id", orderID), zap.String("status", out.Status), zap.String("capture_id", out.CaptureID))
	return out, nil
}

type paypalWebhookBody struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		ID       string `json:"id"`
		CustomID string `json:"custom_id"`
		Amount   struct {
			Value        string `json:"value"`
			CurrencyCode string `json:"currency_code"`
		} `json:"amount"`
	} `json:"resource"`
}

// ParseEvent asks PayPal to verify the transmission headers before trusting the body.
func (g *PayPalGateway) ParseEvent(ctx context.Context, headers http.Header, body []byte) (interfaces.OrderEvent, error) {
	if g.api == nil || g.webhookID == "" {
		return interfaces.OrderEvent{}, ErrPayPalNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/webhooks/paypal", bytes.NewReader(body))
	if err != nil {
		return interfaces.OrderEvent{}, err
	}
	req.Header = headers.Clone()

	v, err := g.api.VerifyWebhookSignature(ctx, req, g.webhookID)
	if err != nil {
		return interfaces.OrderEvent{}, fmt.Errorf("verify webhook signature: %w", err)
	}
	if v == nil || v.VerificationStatus != paypalVerificationSuccess {
		return interfaces.OrderEvent{}, ErrPayPalSignatureRejected
	}

	var b paypalWebhookBody
	if err := json.Unmarshal(body, &b); err != nil {
		return interfaces.OrderEvent{}, fmt.Errorf("decode webhook body: %w", err)
	}
	return interfaces.OrderEvent{
		ID:        b.ID,
		Type:      b.EventType,
		CustomID:  b.Resource.CustomID,
		CaptureID: b.Resource.ID,
		Amount:    parseAmount(b.Resource.Amount.Value),
		Currency:  b.Resource.Amount.CurrencyCode,
		Raw:       append(json.RawMessage(nil), body...),
	}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseAmount(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
