package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agencyops/internal/adapter/http/handlers/mocks"
	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"
	"agencyops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes", bytes.NewBufferString(`{"client_name":"Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid valid_until", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/quotes", h.CreateQuote)

		body := `{"client_name":"Ada","client_email":"ada@example.com","project_title":"Site","price":5000,"valid_until":"next week"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.QuoteInput) (entities.Quote, error) {
			if in.Price != 5000 || in.ValidUntil == nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Quote{ID: "q-1", QuoteNumber: "Q-2026-0001", Price: in.Price, Status: entities.QuoteStatusDraft}, nil
		})

		body := `{"client_name":"Ada","client_email":"ada@example.com","project_title":"Site","price":5000,"valid_until":"2026-12-31"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["quote_number"] != "Q-2026-0001" || resp["status"] != "draft" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/quotes", h.ListQuotes)

		uc.EXPECT().ListQuotes(gomock.Any(), interfaces.QuoteFilter{
			ListOptions: interfaces.ListOptions{Sort: "created_date", Search: "acme", Limit: 10},
			Status:      entities.QuoteStatusSent,
		}).Return([]entities.Quote{{ID: "q-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes?status=sent&sort=created_date&search=acme&limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unsupported sort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/quotes", h.ListQuotes)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes?sort=price", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/quotes", h.ListQuotes)

		uc.EXPECT().ListQuotes(gomock.Any(), gomock.Any()).Return(nil, entities.ErrInvalidQuoteStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes?status=approved", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_SendQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"already decided", usecase.ErrQuoteNotSendable, http.StatusConflict},
		{"ok", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)

			r := gin.New()
			r.POST("/v1/admin/quotes/:id/send", h.SendQuote)

			uc.EXPECT().SendQuote(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/quotes/q-1/send", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestQuoteHandler_ViewQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("public view hides private fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/public/quotes/:id", h.ViewQuote)

		past := time.Now().Add(-time.Hour)
		uc.EXPECT().ViewQuote(gomock.Any(), "q-1").Return(usecase.PublicQuote{
			Quote:           entities.Quote{ID: "q-1", ClientEmail: "ada@example.com", Status: entities.QuoteStatusViewed, ValidUntil: &past, PaymentOrderID: "ord-1"},
			EffectiveStatus: entities.QuoteStatusExpired,
			IsExpired:       true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("X-Robots-Tag"); got != "noindex, nofollow" {
			t.Fatalf("unexpected X-Robots-Tag %q", got)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["effective_status"] != "expired" || resp["can_accept"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := resp["client_email"]; ok {
			t.Fatalf("client_email leaked: %s", w.Body.String())
		}
		if _, ok := resp["payment_order_id"]; ok {
			t.Fatalf("payment_order_id leaked: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/public/quotes/:id", h.ViewQuote)

		uc.EXPECT().ViewQuote(gomock.Any(), "missing").Return(usecase.PublicQuote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_AcceptQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/accept", h.AcceptQuote)

		uc.EXPECT().AcceptQuote(gomock.Any(), "q-1", "").Return(entities.Quote{}, usecase.ErrQuoteExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accepts with notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/accept", h.AcceptQuote)

		accepted := entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted, ClientNotes: "go ahead"}
		uc.EXPECT().AcceptQuote(gomock.Any(), "q-1", "go ahead").Return(accepted, nil)
		uc.EXPECT().ViewQuote(gomock.Any(), "q-1").Return(usecase.PublicQuote{Quote: accepted, EffectiveStatus: entities.QuoteStatusAccepted, CanPay: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/accept", bytes.NewBufferString(`{"notes":"go ahead"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["can_pay"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("decline after payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/decline", h.DeclineQuote)

		uc.EXPECT().DeclineQuote(gomock.Any(), "q-1", "").Return(entities.Quote{}, usecase.ErrQuoteInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.DELETE("/v1/admin/quotes/:id", h.DeleteQuote)

	uc.EXPECT().DeleteQuote(gomock.Any(), "q-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/quotes/q-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
