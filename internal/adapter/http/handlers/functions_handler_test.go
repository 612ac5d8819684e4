package handlers

import (
	"bytes"
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

type functionsFixture struct {
	requests  *mocks.MockIServiceRequestUseCase
	quotes    *mocks.MockIQuotePaymentUseCase
	leads     *mocks.MockILeadUseCase
	reminders *mocks.MockIReminderUseCase
	auth      *mocks.MockIAuthUseCase
	router    *gin.Engine
}

func newFunctionsFixture(ctrl *gomock.Controller) functionsFixture {
	f := functionsFixture{
		requests:  mocks.NewMockIServiceRequestUseCase(ctrl),
		quotes:    mocks.NewMockIQuotePaymentUseCase(ctrl),
		leads:     mocks.NewMockILeadUseCase(ctrl),
		reminders: mocks.NewMockIReminderUseCase(ctrl),
		auth:      mocks.NewMockIAuthUseCase(ctrl),
	}
	h := NewFunctionsHandler(FunctionsDeps{
		ServiceRequests: f.requests,
		QuotePayments:   f.quotes,
		Leads:           f.leads,
		Reminders:       f.reminders,
	}, nil)
	f.router = gin.New()
	f.router.POST("/v1/functions/:name", middleware.LoadSession(f.auth), h.Invoke)
	return f
}

func (f functionsFixture) call(name, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/functions/"+name, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestFunctionsHandler_Invoke(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown function", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)

		w := f.call("deleteEverything", `{}`, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("FUNCTION_NOT_FOUND")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("admin functions require a session", func(t *testing.T) {
		for _, name := range []string{FnSendPaymentLinkEmail, FnRunPaymentReminders, FnConvertLeadToProject} {
			ctrl := gomock.NewController(t)
			f := newFunctionsFixture(ctrl)
			f.auth.EXPECT().ParseToken("bad").Return(usecase.Session{}, usecase.ErrSessionInvalid)

			w := f.call(name, `{}`, "bad")
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s: expected 401, got %d", name, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("runPaymentReminders with session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.auth.EXPECT().ParseToken("tok").Return(usecase.Session{Role: usecase.RoleAdmin}, nil)
		f.reminders.EXPECT().RunPaymentReminders(gomock.Any()).Return(usecase.ReminderReport{ErrorMessages: []string{}}, nil)

		w := f.call(FnRunPaymentReminders, ``, "tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("convertLeadToProject reads lead_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.auth.EXPECT().ParseToken("tok").Return(usecase.Session{Role: usecase.RoleAdmin}, nil)
		f.leads.EXPECT().ConvertToProject(gomock.Any(), "lead-1", "mobile").Return(entities.Project{ID: "prj-1"}, nil)

		w := f.call(FnConvertLeadToProject, `{"lead_id":"lead-1","project_type":"mobile"}`, "tok")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("sendPaymentLinkEmail without lead_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.auth.EXPECT().ParseToken("tok").Return(usecase.Session{Role: usecase.RoleAdmin}, nil)

		w := f.call(FnSendPaymentLinkEmail, `{"payment_link":"https://pay.test/x"}`, "tok")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("createStripeCheckout refuses build sprints", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)

		w := f.call(FnCreateStripeCheckout, `{"kind":"build_sprint","name":"Ada","email":"ada@example.com","hours":2}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("createBuildSprintOrder forces kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.requests.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ServiceRequestInput) (usecase.CheckoutResult, error) {
			if in.Kind != string(entities.ServiceKindBuildSprint) {
				t.Fatalf("expected build_sprint, got %q", in.Kind)
			}
			return usecase.CheckoutResult{Request: entities.ServiceRequest{ID: "sr-1", PaymentAmount: 150}}, nil
		})

		w := f.call(FnCreateBuildSprintOrder, `{"kind":"app_review","name":"Ada","email":"ada@example.com","hours":2}`, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("handleStripeSuccess", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.requests.EXPECT().ConfirmStripe(gomock.Any(), "cs_1").Return(entities.ServiceRequest{ID: "sr-1"}, nil)

		w := f.call(FnHandleStripeSuccess, `{"session_id":"cs_1"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("captureBuildSprintOrder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.requests.EXPECT().CaptureBuildSprint(gomock.Any(), "sr-1", "ord-1").Return(entities.ServiceRequest{ID: "sr-1"}, nil)

		w := f.call(FnCaptureBuildSprintOrder, `{"request_id":"sr-1","token":"ord-1"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("createQuotePayment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.quotes.EXPECT().CreatePayment(gomock.Any(), "q-1").Return(usecase.QuotePaymentSession{QuoteID: "q-1", OrderID: "ord-1"}, nil)

		w := f.call(FnCreateQuotePayment, `{"quote_id":"q-1"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("captureQuotePayment needs token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)

		w := f.call(FnCaptureQuotePayment, `{"quote_id":"q-1"}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("captureQuotePayment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.quotes.EXPECT().CapturePayment(gomock.Any(), "q-1", "ord-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPaid}, nil)

		w := f.call(FnCaptureQuotePayment, `{"quote_id":"q-1","token":"ord-1"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("notifyNewLead is public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFunctionsFixture(ctrl)
		f.leads.EXPECT().NotifyNewLead(gomock.Any(), gomock.Any()).Return(entities.Lead{ID: "lead-1"}, nil)

		w := f.call(FnNotifyNewLead, `{"name":"Ada","email":"ada@example.com"}`, "")
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}
