package handlers

import (
	"errors"
	"io"
	"net/http"

	"agencyops/internal/infrastructure/metrics"
	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxWebhookBody        = 1 << 20
	stripeSignatureHeader = "Stripe-Signature"
)

// WebhookHandler receives processor events. Both processors retry on non-2xx,
// so only malformed or unverifiable events are answered with 400.
type WebhookHandler struct {
	requests usecase.IServiceRequestUseCase
	quotes   usecase.IQuotePaymentUseCase
	log      *zap.Logger
}

func NewWebhookHandler(requests usecase.IServiceRequestUseCase, quotes usecase.IQuotePaymentUseCase, log *zap.Logger) *WebhookHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookHandler{requests: requests, quotes: quotes, log: log.Named("webhook_handler")}
}

// Stripe godoc
// @Summary Stripe checkout webhook
// @Tags webhooks
// @Accept json
// @Success 200
// @Failure 400 {object} pkg.HTTPError
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	body, ok := h.readBody(c, "stripe")
	if !ok {
		return
	}
	err := h.requests.HandleStripeEvent(c.Request.Context(), body, c.GetHeader(stripeSignatureHeader))
	h.finish(c, "stripe", err)
}

// PayPal godoc
// @Summary PayPal order webhook
// @Tags webhooks
// @Accept json
// @Success 200
// @Failure 400 {object} pkg.HTTPError
// @Router /webhooks/paypal [post]
func (h *WebhookHandler) PayPal(c *gin.Context) {
	body, ok := h.readBody(c, "paypal")
	if !ok {
		return
	}
	err := h.quotes.HandleOrderEvent(c.Request.Context(), c.Request.Header, body)
	h.finish(c, "paypal", err)
}

func (h *WebhookHandler) readBody(c *gin.Context, provider string) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		metrics.Webhooks.WithLabelValues(provider, metrics.OutcomeRejected).Inc()
		respondError(c, errInvalidPayload)
		return nil, false
	}
	return body, true
}

func (h *WebhookHandler) finish(c *gin.Context, provider string, err error) {
	switch {
	case err == nil:
		metrics.Webhooks.WithLabelValues(provider, metrics.OutcomeOK).Inc()
		c.Status(http.StatusOK)
	case errors.Is(err, usecase.ErrInvalidWebhook):
		h.log.Warn("webhook rejected", zap.String("provider", provider), zap.Error(err))
		metrics.Webhooks.WithLabelValues(provider, metrics.OutcomeRejected).Inc()
		respondError(c, pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Webhook could not be verified", http.StatusBadRequest))
	default:
		h.log.Error("webhook processing failed", zap.String("provider", provider), zap.Error(err))
		metrics.Webhooks.WithLabelValues(provider, metrics.OutcomeError).Inc()
		respondError(c, pkg.NewInternalError(err))
	}
}
