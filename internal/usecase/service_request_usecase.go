package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"path"
	"strings"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/domain/pricing"
	"agencyops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

var (
	ErrServiceRequestNotFound   = errors.New("service request not found")
	ErrInvalidServiceRequestID  = errors.New("invalid service request id")
	ErrInvalidServiceRequest    = errors.New("invalid service request")
	ErrCheckoutFailed           = errors.New("checkout session creation failed")
	ErrPaymentNotCompleted      = errors.New("payment not completed")
	ErrPaymentAmountMismatch    = errors.New("payment amount mismatch")
	ErrInvalidAttachment        = errors.New("invalid attachment")
	ErrAttachmentStoreMissing   = errors.New("attachment storage not configured")
	ErrServiceRequestNotPayable = errors.New("service request has no pending order")
)

const (
	stripeSessionPaid      = "paid"
	stripeSessionExpired   = "expired"
	stripeEventCompleted   = "checkout.session.completed"
	stripeEventAsyncPaid   = "checkout.session.async_payment_succeeded"
	stripeEventExpired     = "checkout.session.expired"
	stripeEventAsyncFailed = "checkout.session.async_payment_failed"
	amountTolerance        = 0.005
	saveAttempts           = 3
)

// ServiceRequestInput is the public intake form. ClientAmount is only compared
// against the server-side price for logging; it is never charged.
type ServiceRequestInput struct {
	Kind         string
	Name         string
	Email        string
	Company      string
	Phone        string
	AppURL       string
	Platform     string
	Details      string
	AddOns       []string
	Hours        int
	ClientAmount float64
}

// CheckoutResult tells the client where to complete payment.
type CheckoutResult struct {
	Request     entities.ServiceRequest
	CheckoutURL string
	SessionID   string
}

// ReconcileResult summarizes one ReconcileStale run.
type ReconcileResult struct {
	Checked   int `json:"checked"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// IServiceRequestUseCase drives fixed-price intake from submission to payment.
//
// The processor is the source of truth for payment: redirects, webhooks and the
// reconciliation job all converge on the same idempotent completion step.
type IServiceRequestUseCase interface {
	Submit(ctx context.Context, in ServiceRequestInput) (CheckoutResult, error)
	ConfirmStripe(ctx context.Context, sessionID string) (entities.ServiceRequest, error)
	CaptureBuildSprint(ctx context.Context, requestID, token string) (entities.ServiceRequest, error)
	ApplyOrderCapture(ctx context.Context, requestID string, c interfaces.OrderCapture) (entities.ServiceRequest, error)
	HandleStripeEvent(ctx context.Context, payload []byte, signature string) error
	MarkComplete(ctx context.Context, id string) (entities.ServiceRequest, error)
	Get(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, f interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
	UploadAttachment(ctx context.Context, id, filename, contentType string, size int64, body io.Reader) (entities.ServiceRequest, error)
	ReconcileStale(ctx context.Context, olderThan time.Duration) (ReconcileResult, error)
}

type ServiceRequestUseCaseConfig struct {
	PublicBaseURL      string
	Currency           string
	MaxAttachmentBytes int64
}

type ServiceRequestUseCase struct {
	repo     interfaces.IServiceRequestRepository
	leads    interfaces.ILeadRepository
	payments interfaces.IPaymentRepository
	checkout interfaces.ICheckoutGateway
	orders   interfaces.IOrderGateway
	files    interfaces.IFileStore
	notifier interfaces.INotifier
	catalog  pricing.Catalog
	cfg      ServiceRequestUseCaseConfig
	log      *zap.Logger
	now      func() time.Time
}

var (
	_ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)
	_ OrderCaptureApplier    = (*ServiceRequestUseCase)(nil)
)

type ServiceRequestDeps struct {
	Repo     interfaces.IServiceRequestRepository
	Leads    interfaces.ILeadRepository
	Payments interfaces.IPaymentRepository
	Checkout interfaces.ICheckoutGateway
	Orders   interfaces.IOrderGateway
	Files    interfaces.IFileStore
	Notifier interfaces.INotifier
}

func NewServiceRequestUseCase(deps ServiceRequestDeps, catalog pricing.Catalog, cfg ServiceRequestUseCaseConfig, logger *zap.Logger) *ServiceRequestUseCase {
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	if cfg.MaxAttachmentBytes <= 0 {
		cfg.MaxAttachmentBytes = 10 << 20
	}
	if catalog == nil {
		catalog = pricing.Default
	}
	return &ServiceRequestUseCase{
		repo:     deps.Repo,
		leads:    deps.Leads,
		payments: deps.Payments,
		checkout: deps.Checkout,
		orders:   deps.Orders,
		files:    deps.Files,
		notifier: deps.Notifier,
		catalog:  catalog,
		cfg:      cfg,
		log:      componentLogger(logger, "service_request_usecase"),
		now:      utcNow,
	}
}

// Submit persists the request as pending and opens checkout. When the processor
// call fails the stored request is compensated to payment_status=failed.
func (u *ServiceRequestUseCase) Submit(ctx context.Context, in ServiceRequestInput) (CheckoutResult, error) {
	sr, item, err := u.buildRequest(in)
	if err != nil {
		return CheckoutResult{}, err
	}
	if in.ClientAmount > 0 && math.Abs(in.ClientAmount-sr.PaymentAmount) > amountTolerance {
		u.log.Warn("client amount ignored",
			zap.String("kind", string(sr.Kind)),
			zap.Float64("client_amount", in.ClientAmount),
			zap.Float64("amount", sr.PaymentAmount))
	}

	sr.LeadID = u.createIntakeLead(ctx, sr)
	created, err := u.repo.Create(ctx, sr)
	if err != nil {
		return CheckoutResult{}, err
	}
	u.log.Info("service request created", zap.String("request_id", created.ID), zap.String("kind", string(created.Kind)), zap.Float64("amount", created.PaymentAmount))

	var res CheckoutResult
	if created.Kind == entities.ServiceKindBuildSprint {
		res, err = u.openOrder(ctx, created, item)
	} else {
		res, err = u.openCheckout(ctx, created, item)
	}
	if err != nil {
		u.compensateFailed(ctx, created, err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	return res, nil
}

func (u *ServiceRequestUseCase) buildRequest(in ServiceRequestInput) (entities.ServiceRequest, pricing.Item, error) {
	kind, err := entities.ParseServiceKind(strings.TrimSpace(in.Kind))
	if err != nil {
		return entities.ServiceRequest{}, pricing.Item{}, fmt.Errorf("%w: %v", ErrInvalidServiceRequest, err)
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.AppURL = strings.TrimSpace(in.AppURL)
	switch {
	case in.Name == "":
		return entities.ServiceRequest{}, pricing.Item{}, fmt.Errorf("%w: name is required", ErrInvalidServiceRequest)
	case !validEmail(in.Email):
		return entities.ServiceRequest{}, pricing.Item{}, fmt.Errorf("%w: email is invalid", ErrInvalidServiceRequest)
	case (kind == entities.ServiceKindAppReview || kind == entities.ServiceKindMobileConversion) && in.AppURL == "":
		return entities.ServiceRequest{}, pricing.Item{}, fmt.Errorf("%w: app_url is required", ErrInvalidServiceRequest)
	}
	if in.AppURL != "" {
		if parsed, err := url.ParseRequestURI(in.AppURL); err != nil || parsed.Host == "" {
			return entities.ServiceRequest{}, pricing.Item{}, fmt.Errorf("%w: app_url is invalid", ErrInvalidServiceRequest)
		}
	}

	item, err := u.catalog.Lookup(kind)
	if err != nil {
		return entities.ServiceRequest{}, pricing.Item{}, fmt.Errorf("%w: %v", ErrInvalidServiceRequest, err)
	}
	hours := 0
	if item.Hourly() {
		hours = in.Hours
	}
	addOns := dedupe(in.AddOns)
	amount, err := u.catalog.Price(kind, hours, addOns)
	if err != nil {
		return entities.ServiceRequest{}, pricing.Item{}, fmt.Errorf("%w: %v", ErrInvalidServiceRequest, err)
	}

	now := u.now()
	provider := entities.PaymentProviderStripe
	if kind == entities.ServiceKindBuildSprint {
		provider = entities.PaymentProviderPayPal
	}
	return entities.ServiceRequest{
		ID:              uuid.NewString(),
		Kind:            kind,
		Name:            in.Name,
		Email:           in.Email,
		Company:         strings.TrimSpace(in.Company),
		Phone:           strings.TrimSpace(in.Phone),
		AppURL:          in.AppURL,
		Platform:        strings.TrimSpace(in.Platform),
		Details:         strings.TrimSpace(in.Details),
		AddOns:          addOns,
		Hours:           hours,
		PaymentStatus:   entities.RequestPaymentPending,
		PaymentAmount:   amount,
		PaymentProvider: provider,
		Status:          entities.RequestWorkNew,
		ServiceSKU:      item.SKU,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, item, nil
}

// createIntakeLead records the buyer in the CRM pipeline. Failures are logged.
func (u *ServiceRequestUseCase) createIntakeLead(ctx context.Context, sr entities.ServiceRequest) string {
	if u.leads == nil {
		return ""
	}
	l := entities.Lead{
		ID:         uuid.NewString(),
		Name:       sr.Name,
		Email:      sr.Email,
		Company:    sr.Company,
		Phone:      sr.Phone,
		Source:     "service_request:" + string(sr.Kind),
		ServiceSKU: sr.ServiceSKU,
		Message:    sr.Details,
		DealValue:  sr.PaymentAmount,
		Status:     entities.LeadStatusNew,
		CreatedAt:  sr.CreatedAt,
		UpdatedAt:  sr.CreatedAt,
	}
	created, err := u.leads.Create(ctx, l)
	if err != nil {
		u.log.Error("intake lead creation failed", zap.String("request_id", sr.ID), zap.Error(err))
		return ""
	}
	return created.ID
}

func (u *ServiceRequestUseCase) openCheckout(ctx context.Context, sr entities.ServiceRequest, item pricing.Item) (CheckoutResult, error) {
	page := fmt.Sprintf("%s/services/%s", u.cfg.PublicBaseURL, slug.Make(string(sr.Kind)))
	session, err := u.checkout.CreateCheckoutSession(ctx, interfaces.CheckoutSessionInput{
		ReferenceID:   sr.ID,
		ProductName:   item.Name,
		Description:   describeRequest(sr),
		Amount:        sr.PaymentAmount,
		Currency:      u.cfg.Currency,
		CustomerEmail: sr.Email,
		SuccessURL:    page + "/success?session_id={CHECKOUT_SESSION_ID}&request_id=" + url.QueryEscape(sr.ID),
		CancelURL:     page + "?cancelled=true&request_id=" + url.QueryEscape(sr.ID),
		Metadata: map[string]string{
			"request_id": sr.ID,
			"kind":       string(sr.Kind),
			"sku":        sr.ServiceSKU,
		},
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	sr.CheckoutSessionID = session.ID
	sr.UpdatedAt = u.now()
	saved, err := u.repo.Update(ctx, sr, sr.PaymentStatus)
	if err != nil {
		return CheckoutResult{}, err
	}
	u.log.Info("checkout session created", zap.String("request_id", sr.ID), zap.String("session_id", session.ID))
	return CheckoutResult{Request: saved, CheckoutURL: session.URL, SessionID: session.ID}, nil
}

func (u *ServiceRequestUseCase) openOrder(ctx context.Context, sr entities.ServiceRequest, item pricing.Item) (CheckoutResult, error) {
	page := fmt.Sprintf("%s/services/%s", u.cfg.PublicBaseURL, slug.Make(string(sr.Kind)))
	order, err := u.orders.CreateOrder(ctx, interfaces.OrderInput{
		ReferenceID: sr.ID,
		CustomID:    paymentReference(entities.PaymentSubjectServiceRequest, sr.ID),
		Description: fmt.Sprintf("%s (%d hours)", item.Name, sr.Hours),
		Amount:      sr.PaymentAmount,
		Currency:    u.cfg.Currency,
		ReturnURL:   page + "/success?request_id=" + url.QueryEscape(sr.ID),
		CancelURL:   page + "?cancelled=true&request_id=" + url.QueryEscape(sr.ID),
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	sr.CheckoutSessionID = order.ID
	sr.UpdatedAt = u.now()
	saved, err := u.repo.Update(ctx, sr, sr.PaymentStatus)
	if err != nil {
		return CheckoutResult{}, err
	}
	u.log.Info("build sprint order created", zap.String("request_id", sr.ID), zap.String("order_id", order.ID), zap.Float64("amount", sr.PaymentAmount))
	return CheckoutResult{Request: saved, CheckoutURL: order.ApprovalURL, SessionID: order.ID}, nil
}

func (u *ServiceRequestUseCase) compensateFailed(ctx context.Context, sr entities.ServiceRequest, cause error) {
	u.log.Error("checkout failed; marking request failed", zap.String("request_id", sr.ID), zap.Error(cause))
	read := sr.PaymentStatus
	sr.PaymentStatus = entities.RequestPaymentFailed
	sr.UpdatedAt = u.now()
	if _, err := u.repo.Update(ctx, sr, read); err != nil {
		u.log.Error("compensation failed", zap.String("request_id", sr.ID), zap.Error(err))
	}
}

// ConfirmStripe handles the success redirect. Refreshing the success page is
// harmless: an already completed request is returned unchanged.
func (u *ServiceRequestUseCase) ConfirmStripe(ctx context.Context, sessionID string) (entities.ServiceRequest, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ServiceRequest{}, fmt.Errorf("%w: session_id is required", ErrInvalidServiceRequest)
	}
	session, err := u.checkout.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	sr, err := u.requestForSession(ctx, session)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.IsPaid() {
		return sr, nil
	}
	if session.PaymentStatus != stripeSessionPaid {
		return entities.ServiceRequest{}, ErrPaymentNotCompleted
	}
	return u.complete(ctx, sr, entities.PaymentProviderStripe, stripePaymentID(session), session.Amount, session.Currency, session.Raw)
}

// CaptureBuildSprint captures the approved PayPal order behind a build sprint.
func (u *ServiceRequestUseCase) CaptureBuildSprint(ctx context.Context, requestID, token string) (entities.ServiceRequest, error) {
	sr, err := u.Get(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.IsPaid() {
		return sr, nil
	}
	orderID := strings.TrimSpace(token)
	if orderID == "" {
		orderID = sr.CheckoutSessionID
	}
	if orderID == "" || sr.PaymentProvider != entities.PaymentProviderPayPal || (sr.CheckoutSessionID != "" && orderID != sr.CheckoutSessionID) {
		return entities.ServiceRequest{}, ErrServiceRequestNotPayable
	}

	capture, err := u.orders.CaptureOrder(ctx, orderID)
	if err != nil {
		u.log.Error("build sprint capture failed", zap.String("request_id", sr.ID), zap.String("order_id", orderID), zap.Error(err))
		return entities.ServiceRequest{}, fmt.Errorf("%w: %v", ErrPaymentCaptureFailed, err)
	}
	if capture.Status != orderStatusCompleted {
		return entities.ServiceRequest{}, fmt.Errorf("%w: status %s", ErrPaymentCaptureFailed, capture.Status)
	}
	return u.complete(ctx, sr, entities.PaymentProviderPayPal, capture.CaptureID, capture.Amount, capture.Currency, capture.Raw)
}

// ApplyOrderCapture settles a capture reported by the PayPal webhook.
func (u *ServiceRequestUseCase) ApplyOrderCapture(ctx context.Context, requestID string, c interfaces.OrderCapture) (entities.ServiceRequest, error) {
	sr, err := u.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, ErrServiceRequestNotFound) {
			u.log.Warn("capture for unknown service request", zap.String("request_id", requestID))
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	if sr.IsPaid() {
		return sr, nil
	}
	return u.complete(ctx, sr, entities.PaymentProviderPayPal, c.CaptureID, c.Amount, c.Currency, c.Raw)
}

// HandleStripeEvent applies a verified Stripe webhook.
func (u *ServiceRequestUseCase) HandleStripeEvent(ctx context.Context, payload []byte, signature string) error {
	ev, err := u.checkout.ParseEvent(payload, signature)
	if err != nil {
		u.log.Warn("stripe webhook rejected", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}
	u.log.Info("stripe webhook received", zap.String("event_id", ev.ID), zap.String("event_type", ev.Type))

	switch ev.Type {
	case stripeEventCompleted, stripeEventAsyncPaid:
		if ev.Session.PaymentStatus != stripeSessionPaid {
			return nil
		}
		sr, err := u.requestForSession(ctx, ev.Session)
		if errors.Is(err, ErrServiceRequestNotFound) {
			u.log.Warn("stripe webhook for unknown request", zap.String("session_id", ev.Session.ID))
			return nil
		}
		if err != nil {
			return err
		}
		if sr.IsPaid() {
			return nil
		}
		_, err = u.complete(ctx, sr, entities.PaymentProviderStripe, stripePaymentID(ev.Session), ev.Session.Amount, ev.Session.Currency, ev.Session.Raw)
		if errors.Is(err, ErrPaymentAmountMismatch) {
			return nil
		}
		return err
	case stripeEventExpired, stripeEventAsyncFailed:
		sr, err := u.requestForSession(ctx, ev.Session)
		if errors.Is(err, ErrServiceRequestNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = u.fail(ctx, sr, ev.Type)
		return err
	}
	return nil
}

func (u *ServiceRequestUseCase) requestForSession(ctx context.Context, s interfaces.CheckoutSession) (entities.ServiceRequest, error) {
	if s.ReferenceID != "" {
		sr, err := u.repo.GetByID(ctx, s.ReferenceID)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		if sr.ID != "" {
			return sr, nil
		}
	}
	sr, err := u.repo.GetByCheckoutSessionID(ctx, s.ID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return sr, nil
}

// complete flips payment_status to completed once and records the ledger entry.
func (u *ServiceRequestUseCase) complete(ctx context.Context, sr entities.ServiceRequest, provider entities.PaymentProvider, paymentID string, amount float64, currency string, raw []byte) (entities.ServiceRequest, error) {
	if sr.IsPaid() {
		return sr, nil
	}
	if amount > 0 && math.Abs(amount-sr.PaymentAmount) > amountTolerance {
		u.log.Error("payment amount mismatch", zap.String("request_id", sr.ID), zap.Float64("expected", sr.PaymentAmount), zap.Float64("got", amount))
		return entities.ServiceRequest{}, ErrPaymentAmountMismatch
	}
	if currency == "" {
		currency = u.cfg.Currency
	}

	now := u.now()
	read := sr.PaymentStatus
	sr.PaymentStatus = entities.RequestPaymentCompleted
	sr.PaymentProvider = provider
	sr.PaidAt = &now
	sr.UpdatedAt = now
	saved, err := u.repo.Update(ctx, sr, read)
	if errors.Is(err, entities.ErrStatusConflict) {
		// A redirect, webhook or reconcile run got there first.
		current, gerr := u.Get(ctx, sr.ID)
		if gerr != nil {
			return entities.ServiceRequest{}, gerr
		}
		if current.IsPaid() {
			return current, nil
		}
		return entities.ServiceRequest{}, err
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if saved.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}

	if u.payments != nil && paymentID != "" {
		p := newPayment(now, sr.ID, entities.PaymentSubjectServiceRequest, provider, paymentID, sr.PaymentAmount, strings.ToUpper(currency), entities.PaymentStatusApproved, raw)
		if _, err := u.payments.Create(ctx, p); err != nil {
			u.log.Error("payment ledger write failed", zap.String("request_id", sr.ID), zap.String("payment_id", paymentID), zap.Error(err))
		}
	}
	if u.notifier != nil {
		if err := u.notifier.NotifyServiceRequestPaid(ctx, saved); err != nil {
			u.log.Error("paid notification failed", zap.String("request_id", sr.ID), zap.Error(err))
		}
	}
	u.log.Info("service request paid", zap.String("request_id", sr.ID), zap.String("provider", string(provider)))
	return saved, nil
}

// fail moves a pending request to failed. moved is false when the request was
// no longer pending, including when a payment completed it concurrently.
func (u *ServiceRequestUseCase) fail(ctx context.Context, sr entities.ServiceRequest, reason string) (moved bool, err error) {
	if sr.PaymentStatus != entities.RequestPaymentPending {
		return false, nil
	}
	sr.PaymentStatus = entities.RequestPaymentFailed
	sr.UpdatedAt = u.now()
	if _, err := u.repo.Update(ctx, sr, entities.RequestPaymentPending); err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			u.log.Info("service request left pending before it could fail", zap.String("request_id", sr.ID), zap.String("reason", reason))
			return false, nil
		}
		return false, err
	}
	u.log.Info("service request payment failed", zap.String("request_id", sr.ID), zap.String("reason", reason))
	return true, nil
}

// MarkComplete records that the agency delivered the work. Calling it again is a no-op.
func (u *ServiceRequestUseCase) MarkComplete(ctx context.Context, id string) (entities.ServiceRequest, error) {
	sr, err := u.Get(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.Status == entities.RequestWorkCompleted {
		return sr, nil
	}
	return u.saveFresh(ctx, sr, func(sr *entities.ServiceRequest) {
		sr.Status = entities.RequestWorkCompleted
	})
}

// saveFresh applies change and writes it guarded on the payment status it read.
// When a payment lands in between, the request is reloaded and change is
// applied again so the write never rolls the payment back.
func (u *ServiceRequestUseCase) saveFresh(ctx context.Context, sr entities.ServiceRequest, change func(*entities.ServiceRequest)) (entities.ServiceRequest, error) {
	for attempt := 1; ; attempt++ {
		read := sr.PaymentStatus
		change(&sr)
		sr.UpdatedAt = u.now()
		saved, err := u.repo.Update(ctx, sr, read)
		if errors.Is(err, entities.ErrStatusConflict) && attempt < saveAttempts {
			if sr, err = u.Get(ctx, sr.ID); err != nil {
				return entities.ServiceRequest{}, err
			}
			continue
		}
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		if saved.ID == "" {
			return entities.ServiceRequest{}, ErrServiceRequestNotFound
		}
		return saved, nil
	}
}

func (u *ServiceRequestUseCase) Get(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceRequestID
	}
	sr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return sr, nil
}

func (u *ServiceRequestUseCase) List(ctx context.Context, f interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, error) {
	if f.Kind != "" {
		if _, err := entities.ParseServiceKind(string(f.Kind)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidServiceRequest, err)
		}
	}
	switch f.PaymentStatus {
	case "", entities.RequestPaymentPending, entities.RequestPaymentCompleted, entities.RequestPaymentFailed:
	default:
		return nil, fmt.Errorf("%w: unknown payment_status %q", ErrInvalidServiceRequest, f.PaymentStatus)
	}
	return u.repo.List(ctx, f)
}

func (u *ServiceRequestUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceRequestID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrServiceRequestNotFound
	}
	return nil
}

// UploadAttachment stores a file under service-requests/{id}/ and appends its key.
func (u *ServiceRequestUseCase) UploadAttachment(ctx context.Context, id, filename, contentType string, size int64, body io.Reader) (entities.ServiceRequest, error) {
	if u.files == nil {
		return entities.ServiceRequest{}, ErrAttachmentStoreMissing
	}
	if size <= 0 || size > u.cfg.MaxAttachmentBytes || body == nil {
		return entities.ServiceRequest{}, ErrInvalidAttachment
	}
	sr, err := u.Get(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	key := attachmentKey(sr.ID, filename)
	stored, err := u.files.Upload(ctx, key, body, size, contentType)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	saved, err := u.saveFresh(ctx, sr, func(sr *entities.ServiceRequest) {
		sr.Attachments = append(sr.Attachments, stored)
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	u.log.Info("attachment stored", zap.String("request_id", sr.ID), zap.String("key", stored), zap.Int64("size", size))
	return saved, nil
}

// ReconcileStale resolves requests still pending after olderThan by asking the
// processor. Stripe sessions are looked up and settled or failed on expiry.
// Requests that never got a session are failed. PayPal orders are left to the
// capture webhook, since an approved order may still be captured.
func (u *ServiceRequestUseCase) ReconcileStale(ctx context.Context, olderThan time.Duration) (ReconcileResult, error) {
	var res ReconcileResult
	pending, err := u.repo.List(ctx, interfaces.ServiceRequestFilter{
		PaymentStatus: entities.RequestPaymentPending,
		CreatedBefore: u.now().Add(-olderThan),
	})
	if err != nil {
		return res, err
	}

	for _, sr := range pending {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Checked++

		if sr.PaymentProvider == entities.PaymentProviderStripe && sr.CheckoutSessionID != "" {
			session, err := u.checkout.GetCheckoutSession(ctx, sr.CheckoutSessionID)
			if err != nil {
				res.Errors++
				u.log.Error("reconcile session lookup failed", zap.String("request_id", sr.ID), zap.Error(err))
				continue
			}
			if session.PaymentStatus == stripeSessionPaid {
				if _, err := u.complete(ctx, sr, entities.PaymentProviderStripe, stripePaymentID(session), session.Amount, session.Currency, session.Raw); err != nil {
					res.Errors++
					continue
				}
				res.Completed++
				continue
			}
			if session.Status != stripeSessionExpired {
				continue
			}
		} else if sr.PaymentProvider == entities.PaymentProviderPayPal && sr.CheckoutSessionID != "" {
			res.Skipped++
			continue
		}

		moved, err := u.fail(ctx, sr, "reconcile")
		if err != nil {
			res.Errors++
			continue
		}
		if moved {
			res.Failed++
		}
	}
	u.log.Info("reconcile finished",
		zap.Int("checked", res.Checked),
		zap.Int("completed", res.Completed),
		zap.Int("failed", res.Failed),
		zap.Int("skipped", res.Skipped),
		zap.Int("errors", res.Errors))
	return res, nil
}

func stripePaymentID(s interfaces.CheckoutSession) string {
	if s.PaymentID != "" {
		return s.PaymentID
	}
	return s.ID
}

func attachmentKey(requestID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := slug.Make(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("service-requests/%s/%s-%s%s", requestID, uuid.NewString()[:8], base, ext)
}

func describeRequest(sr entities.ServiceRequest) string {
	if len(sr.AddOns) == 0 {
		return sr.ServiceSKU
	}
	return sr.ServiceSKU + " + " + strings.Join(sr.AddOns, ", ")
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
