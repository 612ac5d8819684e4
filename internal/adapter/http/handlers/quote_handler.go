package handlers

import (
	"context"
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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler serves the admin quote CRUD and the public quote page.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary Create a draft quote
// @Tags admin-quotes
// @Accept json
// @Produce json
// @Param body body request.QuoteRequest true "Quote"
// @Success 201 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidQuotePayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidQuotePayload)
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ListQuotes godoc
// @Summary List quotes
// @Tags admin-quotes
// @Produce json
// @Param status query string false "Quote status"
// @Param sort query string false "created_date or -created_date"
// @Param search query string false "Free text"
// @Param limit query int false "Max results"
// @Success 200 {array} response.QuoteResponse
// @Security BearerAuth
// @Router /admin/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		respondError(c, errInvalidListOption)
		return
	}
	qs, err := h.usecase.ListQuotes(c.Request.Context(), interfaces.QuoteFilter{
		ListOptions: opts,
		Status:      entities.QuoteStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidQuotePayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidQuotePayload)
		return
	}

	q, err := h.usecase.UpdateQuote(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SendQuote godoc
// @Summary Email the quote link to the client
// @Tags admin-quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/quotes/{id}/send [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	q, err := h.usecase.SendQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ViewQuote godoc
// @Summary Public quote page data
// @Description The first load of a sent quote marks it viewed.
// @Tags public-quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.PublicQuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /public/quotes/{id} [get]
func (h *QuoteHandler) ViewQuote(c *gin.Context) {
	c.Header("X-Robots-Tag", "noindex, nofollow")
	v, err := h.usecase.ViewQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicQuote(v))
}

// AcceptQuote godoc
// @Summary Accept a quote
// @Tags public-quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param body body request.QuoteDecisionRequest false "Client notes"
// @Success 200 {object} response.PublicQuoteResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /public/quotes/{id}/accept [post]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.decide(c, h.usecase.AcceptQuote)
}

func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.decide(c, h.usecase.DeclineQuote)
}

func (h *QuoteHandler) decide(c *gin.Context, decide func(ctx context.Context, id, notes string) (entities.Quote, error)) {
	var payload request.QuoteDecisionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}

	if _, err := decide(c.Request.Context(), c.Param("id"), payload.Notes); err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	// Re-read through the public view so flags reflect the new state.
	v, err := h.usecase.ViewQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.Header("X-Robots-Tag", "noindex, nofollow")
	c.JSON(http.StatusOK, response.FromPublicQuote(v))
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := commonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteInput):
		return errInvalidQuotePayload
	case errors.Is(err, entities.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid quote status", http.StatusBadRequest).
			WithDetails(map[string]any{"valid": entities.QuoteStatuses})
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotSendable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SENDABLE", "Quote can no longer be sent", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Quote can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote has expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Quote cannot move to that status", http.StatusConflict)
	default:
		return pkg.NewInternalError(err)
	}
}
