package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agencyops/internal/adapter/http/handlers/mocks"
	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_Contact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/public/contact", h.Contact)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/contact", bytes.NewBufferString(`{"name":"Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/public/contact", h.Contact)

		uc.EXPECT().NotifyNewLead(gomock.Any(), usecase.LeadInput{Name: "Ada", Email: "ada@example.com", Message: "hi"}).
			Return(entities.Lead{ID: "lead-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/contact", bytes.NewBufferString(`{"name":"Ada","email":"ada@example.com","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["received"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_UpdateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/leads/:id", h.UpdateLead)

		uc.EXPECT().UpdateLead(gomock.Any(), "lead-1", gomock.Any(), 3).Return(entities.Lead{}, entities.ErrVersionConflict)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/leads/lead-1", bytes.NewBufferString(`{"name":"Ada","email":"ada@example.com","version":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestLeadHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status lists valid values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/leads/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", "Archived", 0).Return(entities.Lead{}, usecase.ErrInvalidLeadStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/leads/lead-1/status", bytes.NewBufferString(`{"status":"Archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Negotiation")) {
			t.Fatalf("expected valid statuses in body: %s", w.Body.String())
		}
	})

	t.Run("moves stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/leads/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", "Won", 2).Return(entities.Lead{ID: "lead-1", Status: entities.LeadStatusWon, Version: 3}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/leads/lead-1/status", bytes.NewBufferString(`{"status":"Won","version":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_ConvertToProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/leads/:id/convert", h.ConvertToProject)

		uc.EXPECT().ConvertToProject(gomock.Any(), "lead-1", "").Return(entities.Project{}, usecase.ErrLeadAlreadyConverted)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/leads/lead-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("creates planning project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/leads/:id/convert", h.ConvertToProject)

		uc.EXPECT().ConvertToProject(gomock.Any(), "lead-1", "web").
			Return(entities.Project{ID: "prj-1", Title: "Acme", Status: entities.ProjectStatusPlanning, LeadID: "lead-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/leads/lead-1/convert", bytes.NewBufferString(`{"project_type":"web"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.ProjectStatusPlanning) || body["lead_id"] != "lead-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_SendPaymentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	r := gin.New()
	r.POST("/v1/admin/leads/:id/payment-link", h.SendPaymentLink)

	uc.EXPECT().SendPaymentLink(gomock.Any(), "lead-1", "ftp://pay", 100.0).Return(entities.Lead{}, usecase.ErrInvalidPaymentLink)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/leads/lead-1/payment-link", bytes.NewBufferString(`{"payment_link":"ftp://pay","amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
