package handlers

import (
	"errors"
	"net/http"

	request "agencyops/internal/adapter/http/dto/request"
	response "agencyops/internal/adapter/http/dto/response"
	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
)

type TaskTemplateHandler struct {
	usecase usecase.ITaskTemplateUseCase
}

func NewTaskTemplateHandler(uc usecase.ITaskTemplateUseCase) *TaskTemplateHandler {
	return &TaskTemplateHandler{usecase: uc}
}

func (h *TaskTemplateHandler) CreateTemplate(c *gin.Context) {
	var payload request.TaskTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidTemplatePayload)
		return
	}
	t, err := h.usecase.CreateTemplate(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapTaskTemplateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTaskTemplate(t))
}

func (h *TaskTemplateHandler) ListTemplates(c *gin.Context) {
	ts, err := h.usecase.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, mapTaskTemplateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTaskTemplates(ts))
}

func (h *TaskTemplateHandler) GetTemplate(c *gin.Context) {
	t, err := h.usecase.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapTaskTemplateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTaskTemplate(t))
}

func (h *TaskTemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.usecase.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapTaskTemplateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyTemplate godoc
// @Summary Create a project's tasks from a template
// @Tags admin-tasks
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param body body request.ApplyTemplateRequest true "Target project"
// @Success 201 {array} response.TaskResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/task-templates/{id}/apply [post]
func (h *TaskTemplateHandler) ApplyTemplate(c *gin.Context) {
	var payload request.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	ts, err := h.usecase.ApplyTemplate(c.Request.Context(), c.Param("id"), payload.ProjectID)
	if err != nil {
		respondError(c, mapTaskTemplateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTasks(ts))
}

var errInvalidTemplatePayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid task template", http.StatusBadRequest)

func mapTaskTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTemplateInput), errors.Is(err, usecase.ErrInvalidProjectID):
		return errInvalidTemplatePayload
	case errors.Is(err, usecase.ErrTaskTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Task template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewInternalError(err)
	}
}
