package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "agencyops/internal/adapter/http/dto/request"
	response "agencyops/internal/adapter/http/dto/response"
	"agencyops/internal/domain/entities"
	"agencyops/internal/infrastructure/metrics"
	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotePaymentHandler handles payment of accepted quotes.
type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
	// mockMode tolerates malformed card payloads when the card gateway is mocked.
	mockMode bool
	log      *zap.Logger
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool, log *zap.Logger) *QuotePaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuotePaymentHandler{usecase: uc, mockMode: mockMode, log: log.Named("quote_payment_handler")}
}

// CreatePayment godoc
// @Summary Start a PayPal order for an accepted quote
// @Tags public-quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.QuotePaymentSessionResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /public/quotes/{id}/pay [post]
func (h *QuotePaymentHandler) CreatePayment(c *gin.Context) {
	quoteID := c.Param("id")
	s, err := h.usecase.CreatePayment(c.Request.Context(), quoteID)
	if err != nil {
		h.log.Warn("create payment failed", zap.String("quote_id", quoteID), zap.Error(err))
		respondError(c, mapQuotePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePaymentSession(s))
}

// CapturePayment godoc
// @Summary Capture an approved PayPal order and mark the quote paid
// @Tags public-quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param body body request.QuoteCaptureRequest true "Order token"
// @Success 200 {object} response.QuoteResponse
// @Failure 402 {object} pkg.HTTPError
// @Router /public/quotes/{id}/capture [post]
func (h *QuotePaymentHandler) CapturePayment(c *gin.Context) {
	var payload request.QuoteCaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	quoteID := c.Param("id")
	q, err := h.usecase.CapturePayment(c.Request.Context(), quoteID, payload.Token)
	if err != nil {
		h.log.Warn("capture failed", zap.String("quote_id", quoteID), zap.Error(err))
		respondError(c, mapQuotePaymentError(err))
		return
	}
	metrics.Payments.WithLabelValues("quote", string(entities.PaymentProviderPayPal)).Inc()
	h.log.Info("quote paid", zap.String("quote_id", q.ID), zap.String("order_id", q.PaymentOrderID))
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// PayDirect godoc
// @Summary Pay an accepted quote with a Mercado Pago card token
// @Tags public-quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param body body request.QuoteDirectPaymentRequest true "Mercado Pago payload"
// @Success 200 {object} response.PaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /public/quotes/{id}/pay-direct [post]
func (h *QuotePaymentHandler) PayDirect(c *gin.Context) {
	quoteID := c.Param("id")
	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Warn("invalid provider payload", zap.String("quote_id", quoteID), zap.Error(err))
			respondError(c, errInvalidPayload)
			return
		}
		h.log.Debug("invalid provider payload in mock mode, using empty payload", zap.String("quote_id", quoteID))
		payload = json.RawMessage("{}")
	}

	p, err := h.usecase.PayDirect(c.Request.Context(), quoteID, payload)
	if err != nil {
		h.log.Warn("direct payment failed", zap.String("quote_id", quoteID), zap.Error(err))
		respondError(c, mapQuotePaymentError(err))
		return
	}
	metrics.Payments.WithLabelValues("quote", string(entities.PaymentProviderMercadoPago)).Inc()
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListPayments godoc
// @Summary List the payment attempts of a quote
// @Tags admin-quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {array} response.PaymentResponse
// @Security BearerAuth
// @Router /admin/quotes/{id}/payments [get]
func (h *QuotePaymentHandler) ListPayments(c *gin.Context) {
	ps, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuotePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(ps))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ResolveProviderPayload(raw)
}

func mapQuotePaymentError(err error) *pkg.AppError {
	if appErr, ok := commonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPayable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PAYABLE", "Quote must be accepted before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Quote cannot move to that status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentOrderMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_ORDER_MISMATCH", "Payment order does not belong to this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentCaptureFailed):
		return pkg.NewDomainError("PAYMENT_CAPTURE_FAILED", "Payment could not be captured", err, http.StatusPaymentRequired)
	default:
		return pkg.NewInternalError(err)
	}
}
