package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agencyops/internal/adapter/http/handlers/mocks"
	"agencyops/internal/adapter/http/middleware"
	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTaskHandler_CreateTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("path project wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/projects/:id/tasks", h.CreateTask)

		uc.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.TaskInput) (entities.Task, error) {
			if in.ProjectID != "prj-1" {
				t.Fatalf("expected prj-1, got %q", in.ProjectID)
			}
			return entities.Task{ID: "task-1", ProjectID: in.ProjectID, Title: in.Title}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/projects/prj-1/tasks", bytes.NewBufferString(`{"title":"Wireframes","project_id":"other"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/tasks", h.CreateTask)

		uc.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(entities.Task{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/tasks", bytes.NewBufferString(`{"title":"Wireframes","project_id":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTaskHandler_AddComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("author defaults to session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().ParseToken("tok").Return(usecase.Session{Email: "admin@agency.test", Role: usecase.RoleAdmin}, nil)

		r := gin.New()
		r.Use(middleware.LoadSession(auth))
		r.POST("/v1/admin/tasks/:id/comments", h.AddComment)

		uc.EXPECT().AddComment(gomock.Any(), "task-1", usecase.CommentInput{Author: "admin@agency.test", Body: "Looks good"}).
			Return(entities.TaskComment{ID: "c-1", TaskID: "task-1", Author: "admin@agency.test", Body: "Looks good"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/tasks/task-1/comments", bytes.NewBufferString(`{"body":"Looks good"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["author"] != "admin@agency.test" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/tasks/:id/comments", h.AddComment)

		uc.EXPECT().AddComment(gomock.Any(), "ghost", gomock.Any()).Return(entities.TaskComment{}, usecase.ErrTaskNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/tasks/ghost/comments", bytes.NewBufferString(`{"author":"me","body":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITaskUseCase(ctrl)
	h := NewTaskHandler(uc)

	r := gin.New()
	r.DELETE("/v1/admin/tasks/:id", h.DeleteTask)

	uc.EXPECT().DeleteTask(gomock.Any(), "task-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/tasks/task-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestTaskTemplateHandler_ApplyTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskTemplateUseCase(ctrl)
		h := NewTaskTemplateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/task-templates/:id/apply", h.ApplyTemplate)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/task-templates/tpl-1/apply", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("creates tasks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskTemplateUseCase(ctrl)
		h := NewTaskTemplateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/task-templates/:id/apply", h.ApplyTemplate)

		uc.EXPECT().ApplyTemplate(gomock.Any(), "tpl-1", "prj-1").Return([]entities.Task{
			{ID: "t1", ProjectID: "prj-1", Title: "Kickoff", Position: 0},
			{ID: "t2", ProjectID: "prj-1", Title: "Design", Position: 1},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/task-templates/tpl-1/apply", bytes.NewBufferString(`{"project_id":"prj-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskTemplateUseCase(ctrl)
		h := NewTaskTemplateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/task-templates/:id/apply", h.ApplyTemplate)

		uc.EXPECT().ApplyTemplate(gomock.Any(), "ghost", "prj-1").Return(nil, usecase.ErrTaskTemplateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/task-templates/ghost/apply", bytes.NewBufferString(`{"project_id":"prj-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTaskTemplateHandler_CreateTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITaskTemplateUseCase(ctrl)
	h := NewTaskTemplateHandler(uc)

	r := gin.New()
	r.POST("/v1/admin/task-templates", h.CreateTemplate)

	uc.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).Return(entities.TaskTemplate{}, usecase.ErrInvalidTemplateInput)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/task-templates", bytes.NewBufferString(`{"name":"Web launch","items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
