package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuoteNotPayable                = errors.New("quote is not accepted")
	ErrPaymentCaptureFailed           = errors.New("payment capture failed")
	ErrPaymentOrderMismatch           = errors.New("payment order does not belong to quote")
	ErrPaymentDeclined                = errors.New("payment declined")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvalidWebhook                 = errors.New("invalid webhook")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const (
	orderStatusCompleted    = "COMPLETED"
	paypalCaptureCompleted  = "PAYMENT.CAPTURE.COMPLETED"
	mercadoPagoApproved     = "approved"
	mercadoPagoRejected     = "rejected"
	mercadoPagoSandboxEmail = "test_user_br@testuser.com"
)

// QuotePaymentSession is returned when an approve-then-capture order is created.
type QuotePaymentSession struct {
	QuoteID     string
	OrderID     string
	ApprovalURL string
	Amount      float64
	Currency    string
}

// OrderCaptureApplier settles a captured order that belongs to a service request.
type OrderCaptureApplier interface {
	ApplyOrderCapture(ctx context.Context, requestID string, c interfaces.OrderCapture) (entities.ServiceRequest, error)
}

// IQuotePaymentUseCase takes an accepted quote to paid.
//
// The quote price stored in the database is always the amount charged; callers
// can never supply it.
type IQuotePaymentUseCase interface {
	CreatePayment(ctx context.Context, quoteID string) (QuotePaymentSession, error)
	CapturePayment(ctx context.Context, quoteID, token string) (entities.Quote, error)
	PayDirect(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Payment, error)
	HandleOrderEvent(ctx context.Context, headers http.Header, body []byte) error
	ListPayments(ctx context.Context, quoteID string) ([]entities.Payment, error)
}

type QuotePaymentUseCaseConfig struct {
	PublicBaseURL     string
	SandboxToken      bool
	SandboxPayerEmail string
}

type QuotePaymentUseCase struct {
	quotes   interfaces.IQuoteRepository
	payments interfaces.IPaymentRepository
	orders   interfaces.IOrderGateway
	cards    interfaces.IPaymentGateway
	requests OrderCaptureApplier
	cfg      QuotePaymentUseCaseConfig
	log      *zap.Logger
	now      func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(
	quotes interfaces.IQuoteRepository,
	payments interfaces.IPaymentRepository,
	orders interfaces.IOrderGateway,
	cards interfaces.IPaymentGateway,
	requests OrderCaptureApplier,
	cfg QuotePaymentUseCaseConfig,
	logger *zap.Logger,
) *QuotePaymentUseCase {
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return &QuotePaymentUseCase{
		quotes:   quotes,
		payments: payments,
		orders:   orders,
		cards:    cards,
		requests: requests,
		cfg:      cfg,
		log:      componentLogger(logger, "quote_payment_usecase"),
		now:      utcNow,
	}
}

func (u *QuotePaymentUseCase) loadQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// CreatePayment opens a PayPal order for an accepted quote. An accepted quote
// past its validity window can still be paid.
func (u *QuotePaymentUseCase) CreatePayment(ctx context.Context, quoteID string) (QuotePaymentSession, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return QuotePaymentSession{}, err
	}
	if !q.CanPay() {
		return QuotePaymentSession{}, ErrQuoteNotPayable
	}

	page := fmt.Sprintf("%s/quote/%s", u.cfg.PublicBaseURL, url.PathEscape(q.ID))
	order, err := u.orders.CreateOrder(ctx, interfaces.OrderInput{
		ReferenceID: q.QuoteNumber,
		CustomID:    paymentReference(entities.PaymentSubjectQuote, q.ID),
		Description: q.ProjectTitle,
		Amount:      q.Price,
		Currency:    q.Currency,
		ReturnURL:   page + "?quote_id=" + url.QueryEscape(q.ID),
		CancelURL:   page + "?cancelled=true",
	})
	if err != nil {
		u.log.Error("quote order creation failed", zap.String("quote_id", q.ID), zap.Error(err))
		return QuotePaymentSession{}, err
	}

	q.PaymentOrderID = order.ID
	q.UpdatedAt = u.now()
	if _, err := u.quotes.Update(ctx, q, q.Status); err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			return QuotePaymentSession{}, ErrQuoteNotPayable
		}
		return QuotePaymentSession{}, err
	}
	u.log.Info("quote order created", zap.String("quote_id", q.ID), zap.String("order_id", order.ID), zap.Float64("amount", q.Price))

	return QuotePaymentSession{
		QuoteID:     q.ID,
		OrderID:     order.ID,
		ApprovalURL: order.ApprovalURL,
		Amount:      q.Price,
		Currency:    q.Currency,
	}, nil
}

// CapturePayment captures the approved order. It is idempotent: a quote already
// paid is returned as-is without contacting the processor.
func (u *QuotePaymentUseCase) CapturePayment(ctx context.Context, quoteID, token string) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusPaid {
		return q, nil
	}
	if !q.CanPay() {
		return entities.Quote{}, ErrQuoteNotPayable
	}

	orderID := strings.TrimSpace(token)
	if orderID == "" {
		orderID = q.PaymentOrderID
	}
	if orderID == "" || (q.PaymentOrderID != "" && orderID != q.PaymentOrderID) {
		return entities.Quote{}, ErrPaymentOrderMismatch
	}

	capture, err := u.orders.CaptureOrder(ctx, orderID)
	if err != nil {
		u.log.Error("quote capture failed", zap.String("quote_id", q.ID), zap.String("order_id", orderID), zap.Error(err))
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrPaymentCaptureFailed, err)
	}
	if capture.Status != orderStatusCompleted {
		u.log.Warn("quote capture not completed", zap.String("quote_id", q.ID), zap.String("status", capture.Status))
		return entities.Quote{}, fmt.Errorf("%w: status %s", ErrPaymentCaptureFailed, capture.Status)
	}
	return u.markPaid(ctx, q, entities.PaymentProviderPayPal, capture.CaptureID, capture.Amount, capture.Currency, capture.Raw)
}

// PayDirect charges a card token through Mercado Pago. transaction_amount is
// always overwritten with the quote price.
func (u *QuotePaymentUseCase) PayDirect(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Payment, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if !q.CanPay() {
		return entities.Payment{}, ErrQuoteNotPayable
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		return entities.Payment{}, ErrInvalidMPPayload
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.Payment{}, ErrInvalidMPPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") {
		return entities.Payment{}, ErrInvalidMPPayload
	}
	ensurePayerDefaults(reqMap, u.cfg.SandboxPayerEmail, u.cfg.SandboxToken)
	if !hasPayer(reqMap) {
		return entities.Payment{}, ErrInvalidMPPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = paymentReference(entities.PaymentSubjectQuote, q.ID)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quote %s", q.QuoteNumber)
	}
	reqMap["transaction_amount"] = q.Price

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	providerID, providerStatus, providerResp, err := u.cards.CreatePayment(ctx, enriched)
	if err != nil {
		u.log.Error("card payment failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Payment{}, classifyGatewayError(err)
	}
	u.log.Info("card payment processed", zap.String("quote_id", q.ID), zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))

	status := entities.PaymentStatusPending
	switch providerStatus {
	case mercadoPagoApproved:
		status = entities.PaymentStatusApproved
	case mercadoPagoRejected:
		status = entities.PaymentStatusDenied
	}

	p := newPayment(u.now(), q.ID, entities.PaymentSubjectQuote, entities.PaymentProviderMercadoPago, providerID, q.Price, q.Currency, status, providerResp)
	if status != entities.PaymentStatusApproved {
		if _, err := u.payments.Create(ctx, p); err != nil {
			return entities.Payment{}, err
		}
		if status == entities.PaymentStatusDenied {
			return p, ErrPaymentDeclined
		}
		return p, nil
	}

	if _, err := u.settle(ctx, q, p); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

// HandleOrderEvent processes a verified PayPal webhook. Captures referencing a
// service request are forwarded; unrelated event types are ignored.
func (u *QuotePaymentUseCase) HandleOrderEvent(ctx context.Context, headers http.Header, body []byte) error {
	ev, err := u.orders.ParseEvent(ctx, headers, body)
	if err != nil {
		u.log.Warn("paypal webhook rejected", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}
	if ev.Type != paypalCaptureCompleted {
		u.log.Debug("paypal webhook ignored", zap.String("event_type", ev.Type))
		return nil
	}

	subject, id, ok := parsePaymentReference(ev.CustomID)
	if !ok {
		u.log.Warn("paypal webhook without reference", zap.String("event_id", ev.ID), zap.String("custom_id", ev.CustomID))
		return nil
	}
	capture := interfaces.OrderCapture{
		CaptureID: ev.CaptureID,
		Status:    orderStatusCompleted,
		Amount:    ev.Amount,
		Currency:  ev.Currency,
		Raw:       ev.Raw,
	}

	if subject == entities.PaymentSubjectServiceRequest {
		if u.requests == nil {
			return nil
		}
		_, err := u.requests.ApplyOrderCapture(ctx, id, capture)
		return err
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		u.log.Warn("paypal webhook for unknown quote", zap.String("quote_id", id))
		return nil
	}
	if q.Status == entities.QuoteStatusPaid {
		return nil
	}
	if !q.CanPay() {
		u.log.Warn("paypal webhook for unpayable quote", zap.String("quote_id", id), zap.String("status", string(q.Status)))
		return nil
	}
	if ev.Amount != q.Price {
		u.log.Error("paypal webhook amount mismatch", zap.String("quote_id", id), zap.Float64("expected", q.Price), zap.Float64("got", ev.Amount))
		return nil
	}
	_, err = u.markPaid(ctx, q, entities.PaymentProviderPayPal, capture.CaptureID, capture.Amount, capture.Currency, capture.Raw)
	return err
}

func (u *QuotePaymentUseCase) ListPayments(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.payments.ListBySubjectID(ctx, quoteID)
}

func (u *QuotePaymentUseCase) markPaid(ctx context.Context, q entities.Quote, provider entities.PaymentProvider, providerID string, amount float64, currency string, raw json.RawMessage) (entities.Quote, error) {
	if currency == "" {
		currency = q.Currency
	}
	p := newPayment(u.now(), q.ID, entities.PaymentSubjectQuote, provider, providerID, amount, currency, entities.PaymentStatusApproved, raw)
	return u.settle(ctx, q, p)
}

// settle writes the ledger entry and moves the quote to paid. A ledger write
// failure is logged: the quote status is what clients observe.
func (u *QuotePaymentUseCase) settle(ctx context.Context, q entities.Quote, p entities.Payment) (entities.Quote, error) {
	if _, err := u.payments.Create(ctx, p); err != nil {
		u.log.Error("payment ledger write failed", zap.String("quote_id", q.ID), zap.String("payment_id", p.ID), zap.Error(err))
	}

	now := u.now()
	read := q.Status
	q.Status = entities.QuoteStatusPaid
	q.PaidDate = &now
	q.UpdatedAt = now
	saved, err := u.quotes.Update(ctx, q, read)
	if errors.Is(err, entities.ErrStatusConflict) {
		return u.settledConcurrently(ctx, q.ID)
	}
	if err != nil {
		return entities.Quote{}, err
	}
	if saved.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.log.Info("quote paid", zap.String("quote_id", q.ID), zap.String("payment_id", p.ID), zap.String("provider", string(p.Provider)))
	return saved, nil
}

// settledConcurrently resolves a lost status race during settle. Another
// capture finishing first is success; anything else is a refused transition.
func (u *QuotePaymentUseCase) settledConcurrently(ctx context.Context, id string) (entities.Quote, error) {
	current, err := u.loadQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status == entities.QuoteStatusPaid {
		return current, nil
	}
	u.log.Warn("quote changed before it could be marked paid", zap.String("quote_id", id), zap.String("status", string(current.Status)))
	return entities.Quote{}, ErrQuoteInvalidTransition
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test payer email when
// neither payer.id nor payer.email was provided.
func ensurePayerDefaults(m map[string]any, sandboxEmail string, sandbox bool) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if sandboxEmail != "" {
		payer["email"] = sandboxEmail
	} else if sandbox {
		payer["email"] = mercadoPagoSandboxEmail
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
