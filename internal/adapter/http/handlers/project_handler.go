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

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProjectPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidProjectPayload)
		return
	}
	p, err := h.usecase.CreateProject(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// ListProjects godoc
// @Summary List projects
// @Tags admin-projects
// @Produce json
// @Param status query string false "Project status"
// @Param sort query string false "created_date or -created_date"
// @Param search query string false "Free text"
// @Param limit query int false "Max results"
// @Success 200 {array} response.ProjectResponse
// @Security BearerAuth
// @Router /admin/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		respondError(c, errInvalidListOption)
		return
	}
	ps, err := h.usecase.ListProjects(c.Request.Context(), interfaces.ProjectFilter{
		ListOptions: opts,
		Status:      entities.ProjectStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(ps))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProjectPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidProjectPayload)
		return
	}
	p, err := h.usecase.UpdateProject(c.Request.Context(), c.Param("id"), in, payload.Version)
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// DeleteProject godoc
// @Summary Delete a project without tasks
// @Tags admin-projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapProjectError(err error) *pkg.AppError {
	if appErr, ok := commonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectInput):
		return errInvalidProjectPayload
	case errors.Is(err, usecase.ErrInvalidProjectStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid project status", http.StatusBadRequest).
			WithDetails(map[string]any{"valid": entities.ProjectStatuses})
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectHasTasks):
		return pkg.NewDomainErrorSimple("PROJECT_HAS_TASKS", "Delete the project's tasks first", http.StatusConflict)
	default:
		return pkg.NewInternalError(err)
	}
}
