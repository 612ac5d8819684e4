package handlers

import (
	"errors"
	"net/http"

	request "agencyops/internal/adapter/http/dto/request"
	response "agencyops/internal/adapter/http/dto/response"
	"agencyops/internal/domain/entities"
	"agencyops/internal/infrastructure/metrics"
	"agencyops/internal/usecase"
	"agencyops/internal/usecase/interfaces"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const attachmentField = "file"

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
	log     *zap.Logger
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase, log *zap.Logger) *ServiceRequestHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceRequestHandler{usecase: uc, log: log.Named("service_request_handler")}
}

// Submit godoc
// @Summary Submit a fixed-price service request and open checkout
// @Description The charged amount is always recomputed on the server.
// @Tags public-services
// @Accept json
// @Produce json
// @Param body body request.ServiceRequestRequest true "Intake form"
// @Success 201 {object} response.CheckoutResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /public/service-requests [post]
func (h *ServiceRequestHandler) Submit(c *gin.Context) {
	var payload request.ServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidServiceRequestPayload)
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.log.Warn("submit failed", zap.String("kind", payload.Kind), zap.Error(err))
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutResult(res))
}

// ConfirmStripe godoc
// @Summary Confirm a Stripe checkout after redirect
// @Tags public-services
// @Accept json
// @Produce json
// @Param body body request.ConfirmStripeRequest true "Checkout session"
// @Success 200 {object} response.ServiceRequestResponse
// @Failure 402 {object} pkg.HTTPError
// @Router /public/service-requests/confirm [post]
func (h *ServiceRequestHandler) ConfirmStripe(c *gin.Context) {
	var payload request.ConfirmStripeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	sr, err := h.usecase.ConfirmStripe(c.Request.Context(), payload.SessionID)
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	metrics.Payments.WithLabelValues("service_request", string(entities.PaymentProviderStripe)).Inc()
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// CaptureOrder godoc
// @Summary Capture the PayPal order of a build sprint
// @Tags public-services
// @Accept json
// @Produce json
// @Param body body request.CaptureOrderRequest true "Order"
// @Success 200 {object} response.ServiceRequestResponse
// @Failure 402 {object} pkg.HTTPError
// @Router /public/service-requests/capture [post]
func (h *ServiceRequestHandler) CaptureOrder(c *gin.Context) {
	var payload request.CaptureOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	sr, err := h.usecase.CaptureBuildSprint(c.Request.Context(), payload.RequestID, payload.Token)
	if err != nil {
		h.log.Warn("capture failed", zap.String("request_id", payload.RequestID), zap.Error(err))
		respondError(c, mapServiceRequestError(err))
		return
	}
	metrics.Payments.WithLabelValues("service_request", string(entities.PaymentProviderPayPal)).Inc()
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// UploadAttachment godoc
// @Summary Attach a file to a service request
// @Tags public-services
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Service request ID"
// @Param file formData file true "Attachment"
// @Success 200 {object} response.ServiceRequestResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /public/service-requests/{id}/attachments [post]
func (h *ServiceRequestHandler) UploadAttachment(c *gin.Context) {
	fh, err := c.FormFile(attachmentField)
	if err != nil {
		respondError(c, errInvalidAttachment)
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, errInvalidAttachment)
		return
	}
	defer f.Close()

	sr, err := h.usecase.UploadAttachment(c.Request.Context(), c.Param("id"), fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// ListServiceRequests godoc
// @Summary List service requests
// @Tags admin-services
// @Produce json
// @Param kind query string false "Service kind"
// @Param payment_status query string false "pending, completed or failed"
// @Param sort query string false "created_date or -created_date"
// @Param limit query int false "Max results"
// @Success 200 {array} response.ServiceRequestResponse
// @Security BearerAuth
// @Router /admin/service-requests [get]
func (h *ServiceRequestHandler) List(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		respondError(c, errInvalidListOption)
		return
	}
	rs, err := h.usecase.List(c.Request.Context(), interfaces.ServiceRequestFilter{
		ListOptions:   opts,
		Kind:          entities.ServiceKind(c.Query("kind")),
		PaymentStatus: entities.RequestPaymentStatus(c.Query("payment_status")),
	})
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(rs))
}

func (h *ServiceRequestHandler) Get(c *gin.Context) {
	sr, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// MarkComplete records that the delivery work is done.
func (h *ServiceRequestHandler) MarkComplete(c *gin.Context) {
	sr, err := h.usecase.MarkComplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

func (h *ServiceRequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

var (
	errInvalidServiceRequestPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_REQUEST", "Invalid service request", http.StatusBadRequest)
	errInvalidAttachment            = pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Invalid attachment", http.StatusBadRequest)
)

func mapServiceRequestError(err error) *pkg.AppError {
	if appErr, ok := commonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceRequestID):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrInvalidServiceRequest):
		return pkg.NewDomainError("INVALID_SERVICE_REQUEST", "Invalid service request", err, http.StatusBadRequest).
			WithDetails(map[string]any{"reason": err.Error()})
	case errors.Is(err, usecase.ErrInvalidAttachment):
		return errInvalidAttachment
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceRequestNotPayable):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_PAYABLE", "Service request has no pending order", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_COMPLETED", "Payment has not completed", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentCaptureFailed):
		return pkg.NewDomainError("PAYMENT_CAPTURE_FAILED", "Payment could not be captured", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentAmountMismatch):
		return pkg.NewDomainError("PAYMENT_AMOUNT_MISMATCH", "Paid amount does not match the price", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutFailed):
		return pkg.NewDomainError("CHECKOUT_FAILED", "Could not start checkout", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrAttachmentStoreMissing):
		return pkg.NewDomainError("ATTACHMENTS_DISABLED", "Attachments are not available", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewInternalError(err)
	}
}
