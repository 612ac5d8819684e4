package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agencyops/internal/adapter/http/handlers/mocks"
	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestQuotePaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/pay", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), "q-1").Return(usecase.QuotePaymentSession{}, usecase.ErrQuoteNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("returns approval url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/pay", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), "q-1").Return(usecase.QuotePaymentSession{
			QuoteID: "q-1", OrderID: "ord-1", ApprovalURL: "https://paypal.test/approve/ord-1", Amount: 5000, Currency: "USD",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["approval_url"] != "https://paypal.test/approve/ord-1" || body["amount"] != float64(5000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuotePaymentHandler_CapturePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/capture", h.CapturePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/capture", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("capture failed keeps quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/capture", h.CapturePayment)

		uc.EXPECT().CapturePayment(gomock.Any(), "q-1", "ord-1").Return(entities.Quote{}, usecase.ErrPaymentCaptureFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/capture", bytes.NewBufferString(`{"token":"ord-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("order mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/capture", h.CapturePayment)

		uc.EXPECT().CapturePayment(gomock.Any(), "q-1", "other").Return(entities.Quote{}, usecase.ErrPaymentOrderMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/capture", bytes.NewBufferString(`{"token":"other"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/capture", h.CapturePayment)

		now := time.Now().UTC()
		uc.EXPECT().CapturePayment(gomock.Any(), "q-1", "ord-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPaid, PaidDate: &now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/capture", bytes.NewBufferString(`{"token":"ord-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuotePaymentHandler_PayDirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/pay-direct", h.PayDirect)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/pay-direct", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mock mode tolerates invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, true, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/pay-direct", h.PayDirect)

		uc.EXPECT().PayDirect(gomock.Any(), "q-1", json.RawMessage("{}")).Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/pay-direct", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
			{usecase.ErrPaymentDeclined, http.StatusPaymentRequired},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
			h := NewQuotePaymentHandler(uc, false, nil)

			r := gin.New()
			r.POST("/v1/public/quotes/:id/pay-direct", h.PayDirect)

			uc.EXPECT().PayDirect(gomock.Any(), "q-1", gomock.Any()).Return(entities.Payment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/pay-direct", bytes.NewBufferString(`{"mp_payload":{"token":"card"}}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		h := NewQuotePaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/public/quotes/:id/pay-direct", h.PayDirect)

		uc.EXPECT().PayDirect(gomock.Any(), "q-1", json.RawMessage(`{"token":"card"}`)).Return(entities.Payment{ID: "pay-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/quotes/q-1/pay-direct", bytes.NewBufferString(`{"mp_payload":{"token":"card"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}
}

func TestQuotePaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
	h := NewQuotePaymentHandler(uc, false, nil)

	r := gin.New()
	r.GET("/v1/admin/quotes/:id/payments", h.ListPayments)

	uc.EXPECT().ListPayments(gomock.Any(), "q-1").Return([]entities.Payment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes/q-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
