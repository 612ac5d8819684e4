package handlers

import (
	"net/http"

	request "agencyops/internal/adapter/http/dto/request"
	response "agencyops/internal/adapter/http/dto/response"
	"agencyops/internal/adapter/http/middleware"
	"agencyops/internal/domain/entities"
	"agencyops/internal/infrastructure/metrics"
	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Function keys served by POST /v1/functions/:name.
const (
	FnCreateStripeCheckout    = "createStripeCheckout"
	FnHandleStripeSuccess     = "handleStripeSuccess"
	FnCreateBuildSprintOrder  = "createBuildSprintOrder"
	FnCaptureBuildSprintOrder = "captureBuildSprintOrder"
	FnCreateQuotePayment      = "createQuotePayment"
	FnCaptureQuotePayment     = "captureQuotePayment"
	FnSendPaymentLinkEmail    = "sendPaymentLinkEmail"
	FnNotifyNewLead           = "notifyNewLead"
	FnRunPaymentReminders     = "runPaymentReminders"
	FnConvertLeadToProject    = "convertLeadToProject"
)

type function struct {
	adminOnly bool
	handle    gin.HandlerFunc
}

// FunctionsHandler exposes the named function surface used by the web client.
// Each function reuses the same use case call as its REST counterpart.
type FunctionsHandler struct {
	functions map[string]function
}

type FunctionsDeps struct {
	ServiceRequests usecase.IServiceRequestUseCase
	QuotePayments   usecase.IQuotePaymentUseCase
	Leads           usecase.ILeadUseCase
	Reminders       usecase.IReminderUseCase
}

func NewFunctionsHandler(deps FunctionsDeps, log *zap.Logger) *FunctionsHandler {
	requests := NewServiceRequestHandler(deps.ServiceRequests, log)
	leads := NewLeadHandler(deps.Leads)
	reminders := NewReminderHandler(deps.Reminders)

	h := &FunctionsHandler{}
	h.functions = map[string]function{
		FnCreateStripeCheckout:    {handle: submitKind(requests, false)},
		FnHandleStripeSuccess:     {handle: requests.ConfirmStripe},
		FnCreateBuildSprintOrder:  {handle: submitKind(requests, true)},
		FnCaptureBuildSprintOrder: {handle: requests.CaptureOrder},
		FnCreateQuotePayment:      {handle: createQuotePayment(deps.QuotePayments)},
		FnCaptureQuotePayment:     {handle: captureQuotePayment(deps.QuotePayments)},
		FnSendPaymentLinkEmail:    {adminOnly: true, handle: sendPaymentLink(deps.Leads)},
		FnNotifyNewLead:           {handle: leads.Contact},
		FnRunPaymentReminders:     {adminOnly: true, handle: reminders.RunPaymentReminders},
		FnConvertLeadToProject:    {adminOnly: true, handle: convertLead(deps.Leads)},
	}
	return h
}

// Invoke godoc
// @Summary Invoke a named function
// @Tags functions
// @Accept json
// @Produce json
// @Param name path string true "Function name"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /functions/{name} [post]
func (h *FunctionsHandler) Invoke(c *gin.Context) {
	fn, ok := h.functions[c.Param("name")]
	if !ok {
		respondError(c, pkg.NewDomainErrorSimple("FUNCTION_NOT_FOUND", "Function not found", http.StatusNotFound))
		return
	}
	if fn.adminOnly {
		if _, ok := middleware.SessionFrom(c); !ok {
			respondError(c, pkg.ErrUnauthorized)
			return
		}
	}
	fn.handle(c)
}

// submitKind restricts the shared intake to the Stripe kinds or to build sprints.
func submitKind(requests *ServiceRequestHandler, buildSprint bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.ServiceRequestRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidServiceRequestPayload)
			return
		}
		if buildSprint {
			payload.Kind = string(entities.ServiceKindBuildSprint)
		} else if payload.Kind == string(entities.ServiceKindBuildSprint) {
			respondError(c, errInvalidServiceRequestPayload.WithDetails(map[string]any{"function": FnCreateBuildSprintOrder}))
			return
		}

		res, err := requests.usecase.Submit(c.Request.Context(), payload.ToInput())
		if err != nil {
			respondError(c, mapServiceRequestError(err))
			return
		}
		c.JSON(http.StatusCreated, response.FromCheckoutResult(res))
	}
}

func createQuotePayment(uc usecase.IQuotePaymentUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.QuoteIDRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
		s, err := uc.CreatePayment(c.Request.Context(), payload.QuoteID)
		if err != nil {
			respondError(c, mapQuotePaymentError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromQuotePaymentSession(s))
	}
}

func captureQuotePayment(uc usecase.IQuotePaymentUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.QuoteIDRequest
		if err := c.ShouldBindJSON(&payload); err != nil || payload.Token == "" {
			respondError(c, errInvalidPayload)
			return
		}
		q, err := uc.CapturePayment(c.Request.Context(), payload.QuoteID, payload.Token)
		if err != nil {
			respondError(c, mapQuotePaymentError(err))
			return
		}
		metrics.Payments.WithLabelValues("quote", string(entities.PaymentProviderPayPal)).Inc()
		c.JSON(http.StatusOK, response.FromQuote(q))
	}
}

func sendPaymentLink(uc usecase.ILeadUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.PaymentLinkRequest
		if err := c.ShouldBindJSON(&payload); err != nil || payload.LeadID == "" {
			respondError(c, errInvalidPayload)
			return
		}
		l, err := uc.SendPaymentLink(c.Request.Context(), payload.LeadID, payload.PaymentLink, payload.Amount)
		if err != nil {
			respondError(c, mapLeadError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromLead(l))
	}
}

func convertLead(uc usecase.ILeadUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.ConvertLeadRequest
		if err := c.ShouldBindJSON(&payload); err != nil || payload.LeadID == "" {
			respondError(c, errInvalidPayload)
			return
		}
		p, err := uc.ConvertToProject(c.Request.Context(), payload.LeadID, payload.ProjectType)
		if err != nil {
			respondError(c, mapLeadError(err))
			return
		}
		c.JSON(http.StatusCreated, response.FromProject(p))
	}
}
