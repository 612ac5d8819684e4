package handlers

import (
	"errors"
	"net/http"
	"strings"

	"agencyops/internal/adapter/http/middleware"
	request "agencyops/internal/adapter/http/dto/request"
	response "agencyops/internal/adapter/http/dto/response"
	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)

// TaskHandler serves project tasks and their comments.
type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidTaskPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidTaskPayload)
		return
	}
	if projectID := c.Param("id"); projectID != "" {
		in.ProjectID = projectID
	}

	t, err := h.usecase.CreateTask(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTask(t))
}

// ListTasks godoc
// @Summary List the tasks of a project in board order
// @Tags admin-tasks
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} response.TaskResponse
// @Security BearerAuth
// @Router /admin/projects/{id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ts, err := h.usecase.ListTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTasks(ts))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	t, err := h.usecase.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTask(t))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidTaskPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidTaskPayload)
		return
	}
	t, err := h.usecase.UpdateTask(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTask(t))
}

// DeleteTask removes the task and its comments.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddComment godoc
// @Summary Comment on a task
// @Description The author defaults to the signed-in admin.
// @Tags admin-tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param body body request.CommentRequest true "Comment"
// @Success 201 {object} response.CommentResponse
// @Security BearerAuth
// @Router /admin/tasks/{id}/comments [post]
func (h *TaskHandler) AddComment(c *gin.Context) {
	var payload request.CommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	in := payload.ToInput()
	if strings.TrimSpace(in.Author) == "" {
		if s, ok := middleware.SessionFrom(c); ok {
			in.Author = s.Email
		}
	}

	cm, err := h.usecase.AddComment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromComment(cm))
}

func (h *TaskHandler) ListComments(c *gin.Context) {
	cs, err := h.usecase.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromComments(cs))
}

func (h *TaskHandler) DeleteComment(c *gin.Context) {
	if err := h.usecase.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapTaskError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID), errors.Is(err, usecase.ErrInvalidTaskInput), errors.Is(err, usecase.ErrInvalidProjectID):
		return errInvalidTaskPayload
	case errors.Is(err, usecase.ErrInvalidCommentInput):
		return pkg.NewDomainErrorSimple("INVALID_COMMENT_INPUT", "Comment body is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommentNotFound):
		return pkg.NewDomainErrorSimple("COMMENT_NOT_FOUND", "Comment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewInternalError(err)
	}
}
