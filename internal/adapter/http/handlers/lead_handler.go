package handlers

import (
	"errors"
	"net/http"

	request "agencyops/internal/adapter/http/dto/request"
	response "agencyops/internal/adapter/http/dto/response"
	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"
	"agencyops/internal/usecase/interfaces"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler serves the CRM pipeline and the public contact form.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// Contact godoc
// @Summary Public contact form
// @Description Creates a lead and notifies the agency.
// @Tags public-leads
// @Accept json
// @Produce json
// @Param body body request.ContactRequest true "Contact"
// @Success 202 {object} response.AcknowledgedResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /public/contact [post]
func (h *LeadHandler) Contact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidLeadPayload)
		return
	}
	if _, err := h.usecase.NotifyNewLead(c.Request.Context(), payload.ToInput()); err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.AcknowledgedResponse{Received: true})
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidLeadPayload)
		return
	}
	l, err := h.usecase.CreateLead(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(l))
}

// ListLeads godoc
// @Summary List leads
// @Tags admin-leads
// @Produce json
// @Param status query string false "Pipeline stage"
// @Param sort query string false "created_date or -created_date"
// @Param search query string false "Free text"
// @Param limit query int false "Max results"
// @Success 200 {array} response.LeadResponse
// @Security BearerAuth
// @Router /admin/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		respondError(c, errInvalidListOption)
		return
	}
	ls, err := h.usecase.ListLeads(c.Request.Context(), interfaces.LeadFilter{
		ListOptions: opts,
		Status:      entities.LeadStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(ls))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	l, err := h.usecase.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(l))
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidLeadPayload)
		return
	}
	l, err := h.usecase.UpdateLead(c.Request.Context(), c.Param("id"), payload.ToInput(), payload.Version)
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(l))
}

// UpdateStatus godoc
// @Summary Move a lead to another pipeline stage
// @Tags admin-leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param body body request.LeadStatusRequest true "Stage"
// @Success 200 {object} response.LeadResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidLeadPayload)
		return
	}
	l, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status, payload.Version)
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(l))
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.usecase.DeleteLead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertToProject godoc
// @Summary Convert a lead into a project
// @Tags admin-leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param body body request.ConvertLeadRequest false "Project type"
// @Success 201 {object} response.ProjectResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/leads/{id}/convert [post]
func (h *LeadHandler) ConvertToProject(c *gin.Context) {
	var payload request.ConvertLeadRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}
	p, err := h.usecase.ConvertToProject(c.Request.Context(), c.Param("id"), payload.ProjectType)
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// SendPaymentLink emails a payment link to the lead and records it.
func (h *LeadHandler) SendPaymentLink(c *gin.Context) {
	var payload request.PaymentLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	l, err := h.usecase.SendPaymentLink(c.Request.Context(), c.Param("id"), payload.PaymentLink, payload.Amount)
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(l))
}

func mapLeadError(err error) *pkg.AppError {
	if appErr, ok := commonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadInput):
		return errInvalidLeadPayload
	case errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid lead status", http.StatusBadRequest).
			WithDetails(map[string]any{"valid": entities.LeadStatuses})
	case errors.Is(err, usecase.ErrInvalidPaymentLink):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_LINK", "Payment link must be an absolute http(s) URL", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadAlreadyConverted):
		return pkg.NewDomainErrorSimple("LEAD_ALREADY_CONVERTED", "Lead was already converted", http.StatusConflict)
	default:
		return pkg.NewInternalError(err)
	}
}
