package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"
	mock_interfaces "agencyops/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type quotePaymentMocks struct {
	quotes   *mock_interfaces.MockIQuoteRepository
	payments *mock_interfaces.MockIPaymentRepository
	orders   *mock_interfaces.MockIOrderGateway
	cards    *mock_interfaces.MockIPaymentGateway
	requests *stubCaptureApplier
}

type stubCaptureApplier struct {
	calls []string
}

func (s *stubCaptureApplier) ApplyOrderCapture(_ context.Context, requestID string, _ interfaces.OrderCapture) (entities.ServiceRequest, error) {
	s.calls = append(s.calls, requestID)
	return entities.ServiceRequest{ID: requestID}, nil
}

func newTestQuotePaymentUseCase(t *testing.T) (*QuotePaymentUseCase, quotePaymentMocks) {
	ctrl := gomock.NewController(t)
	m := quotePaymentMocks{
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		orders:   mock_interfaces.NewMockIOrderGateway(ctrl),
		cards:    mock_interfaces.NewMockIPaymentGateway(ctrl),
		requests: &stubCaptureApplier{},
	}
	uc := NewQuotePaymentUseCase(m.quotes, m.payments, m.orders, m.cards, m.requests, QuotePaymentUseCaseConfig{
		PublicBaseURL: "https://agency.test",
		SandboxToken:  true,
	}, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func acceptedQuote() entities.Quote {
	return entities.Quote{
		ID:          "q1",
		QuoteNumber: "Q-20261016-ABCDEF",
		Price:       5000,
		Currency:    "USD",
		Status:      entities.QuoteStatusAccepted,
	}
}

func TestQuotePaymentUseCase_CreatePayment(t *testing.T) {
	t.Run("uses the stored price", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil)
		m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in interfaces.OrderInput) (interfaces.Order, error) {
			if in.Amount != 5000 {
				t.Fatalf("expected amount 5000, got %v", in.Amount)
			}
			if in.CustomID != "quote:q1" {
				t.Fatalf("unexpected custom id %q", in.CustomID)
			}
			return interfaces.Order{ID: "ORDER-1", ApprovalURL: "https://paypal.test/approve"}, nil
		})
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any(), entities.QuoteStatusAccepted).DoAndReturn(func(_ context.Context, q entities.Quote, _ entities.QuoteStatus) (entities.Quote, error) {
			assert.Equal(t, "ORDER-1", q.PaymentOrderID)
			return q, nil
		})

		s, err := uc.CreatePayment(context.Background(), "q1")
		require.NoError(t, err)
		assert.Equal(t, "ORDER-1", s.OrderID)
		assert.Equal(t, 5000.0, s.Amount)
	})

	t.Run("expired accepted quote is still payable", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		q := acceptedQuote()
		past := fixedNow.Add(-72 * time.Hour)
		q.ValidUntil = &past
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)
		m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(interfaces.Order{ID: "ORDER-2"}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any(), entities.QuoteStatusAccepted).DoAndReturn(saveQuote)

		_, err := uc.CreatePayment(context.Background(), "q1")
		require.NoError(t, err)
	})

	t.Run("quote changed while the order was opened", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil)
		m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(interfaces.Order{ID: "ORDER-3"}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any(), entities.QuoteStatusAccepted).Return(entities.Quote{}, entities.ErrStatusConflict)

		_, err := uc.CreatePayment(context.Background(), "q1")
		assert.ErrorIs(t, err, ErrQuoteNotPayable)
	})

	t.Run("not accepted", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusSent}, nil)

		_, err := uc.CreatePayment(context.Background(), "q1")
		assert.ErrorIs(t, err, ErrQuoteNotPayable)
	})
}

func TestQuotePaymentUseCase_CapturePayment(t *testing.T) {
	t.Run("completed capture marks paid and writes ledger", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		q := acceptedQuote()
		q.PaymentOrderID = "ORDER-1"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)
		m.orders.EXPECT().CaptureOrder(gomock.Any(), "ORDER-1").Return(interfaces.OrderCapture{
			OrderID: "ORDER-1", CaptureID: "CAP-1", Status: "COMPLETED", Amount: 5000, Currency: "USD",
			Raw: json.RawMessage(`{"id":"ORDER-1"}`),
		}, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			assert.Equal(t, "CAP-1", p.ID)
			assert.Equal(t, entities.PaymentSubjectQuote, p.SubjectType)
			assert.Equal(t, entities.PaymentStatusApproved, p.Status)
			assert.Equal(t, "ORDER-1", p.ProviderPayload["id"])
			return p, nil
		})
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any(), entities.QuoteStatusAccepted).DoAndReturn(saveQuote)

		paid, err := uc.CapturePayment(context.Background(), "q1", "ORDER-1")
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusPaid, paid.Status)
		require.NotNil(t, paid.PaidDate)
	})

	t.Run("losing the race to another capture returns the paid quote", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		q := acceptedQuote()
		q.PaymentOrderID = "ORDER-1"
		paid := q
		paid.Status = entities.QuoteStatusPaid
		gomock.InOrder(
			m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil),
			m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(paid, nil),
		)
		m.orders.EXPECT().CaptureOrder(gomock.Any(), "ORDER-1").Return(interfaces.OrderCapture{CaptureID: "CAP-1", Status: "COMPLETED", Amount: 5000}, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any(), entities.QuoteStatusAccepted).Return(entities.Quote{}, entities.ErrStatusConflict)

		got, err := uc.CapturePayment(context.Background(), "q1", "ORDER-1")
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusPaid, got.Status)
	})

	t.Run("already paid is a no-op", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		q := acceptedQuote()
		q.Status = entities.QuoteStatusPaid
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)

		got, err := uc.CapturePayment(context.Background(), "q1", "ORDER-1")
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusPaid, got.Status)
	})

	t.Run("token for another order", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		q := acceptedQuote()
		q.PaymentOrderID = "ORDER-1"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)

		_, err := uc.CapturePayment(context.Background(), "q1", "ORDER-9")
		assert.ErrorIs(t, err, ErrPaymentOrderMismatch)
	})

	t.Run("capture not completed", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		q := acceptedQuote()
		q.PaymentOrderID = "ORDER-1"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)
		m.orders.EXPECT().CaptureOrder(gomock.Any(), "ORDER-1").Return(interfaces.OrderCapture{Status: "PENDING"}, nil)

		_, err := uc.CapturePayment(context.Background(), "q1", "")
		assert.ErrorIs(t, err, ErrPaymentCaptureFailed)
	})
}

func TestQuotePaymentUseCase_PayDirect(t *testing.T) {
	t.Run("client amount is overridden", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil)
		m.cards.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(payload, &body); err != nil {
				t.Fatalf("payload is not json: %v", err)
			}
			if body["transaction_amount"] != 5000.0 {
				t.Fatalf("expected transaction_amount 5000, got %v", body["transaction_amount"])
			}
			payer := body["payer"].(map[string]any)
			assert.Equal(t, mercadoPagoSandboxEmail, payer["email"])
			assert.Equal(t, "quote:q1", body["external_reference"])
			return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
		})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any(), entities.QuoteStatusAccepted).DoAndReturn(func(_ context.Context, q entities.Quote, _ entities.QuoteStatus) (entities.Quote, error) {
			assert.Equal(t, entities.QuoteStatusPaid, q.Status)
			return q, nil
		})

		p, err := uc.PayDirect(context.Background(), "q1", json.RawMessage(`{"token":"tok","payment_method_id":"visa","transaction_amount":1}`))
		require.NoError(t, err)
		assert.Equal(t, "123", p.ID)
		assert.Equal(t, 5000.0, p.Amount)
	})

	t.Run("rejected payment is recorded", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil)
		m.cards.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("124", "rejected", json.RawMessage(`{}`), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			assert.Equal(t, entities.PaymentStatusDenied, p.Status)
			return p, nil
		})

		_, err := uc.PayDirect(context.Background(), "q1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"a@b.co"}}`))
		assert.ErrorIs(t, err, ErrPaymentDeclined)
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil).Times(2)

		_, err := uc.PayDirect(context.Background(), "q1", json.RawMessage(`not-json`))
		assert.ErrorIs(t, err, ErrInvalidMPPayload)
		_, err = uc.PayDirect(context.Background(), "q1", json.RawMessage(`{"token":"tok"}`))
		assert.ErrorIs(t, err, ErrInvalidMPPayload)
	})

	t.Run("gateway error is classified", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil)
		m.cards.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"message":"Customer not found","code":2002}`))

		_, err := uc.PayDirect(context.Background(), "q1", json.RawMessage(`{"payment_method_id":"visa"}`))
		assert.ErrorIs(t, err, ErrPaymentGatewayCustomerNotFound)
	})
}

func TestQuotePaymentUseCase_HandleOrderEvent(t *testing.T) {
	t.Run("invalid signature", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.orders.EXPECT().ParseEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.OrderEvent{}, errors.New("bad signature"))

		err := uc.HandleOrderEvent(context.Background(), http.Header{}, []byte(`{}`))
		assert.ErrorIs(t, err, ErrInvalidWebhook)
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.orders.EXPECT().ParseEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.OrderEvent{Type: "CHECKOUT.ORDER.APPROVED"}, nil)

		require.NoError(t, uc.HandleOrderEvent(context.Background(), http.Header{}, nil))
	})

	t.Run("service request capture is forwarded", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.orders.EXPECT().ParseEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.OrderEvent{
			Type: paypalCaptureCompleted, CustomID: "service_request:sr1", CaptureID: "CAP-9", Amount: 150,
		}, nil)

		require.NoError(t, uc.HandleOrderEvent(context.Background(), http.Header{}, nil))
		assert.Equal(t, []string{"sr1"}, m.requests.calls)
	})

	t.Run("quote capture settles the quote", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.orders.EXPECT().ParseEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.OrderEvent{
			Type: paypalCaptureCompleted, CustomID: "quote:q1", CaptureID: "CAP-1", Amount: 5000, Currency: "USD",
		}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any(), entities.QuoteStatusAccepted).DoAndReturn(saveQuote)

		require.NoError(t, uc.HandleOrderEvent(context.Background(), http.Header{}, nil))
	})

	t.Run("amount mismatch is not settled", func(t *testing.T) {
		uc, m := newTestQuotePaymentUseCase(t)
		m.orders.EXPECT().ParseEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.OrderEvent{
			Type: paypalCaptureCompleted, CustomID: "quote:q1", Amount: 1,
		}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(acceptedQuote(), nil)

		require.NoError(t, uc.HandleOrderEvent(context.Background(), http.Header{}, nil))
	})
}

func TestParsePaymentReference(t *testing.T) {
	subject, id, ok := parsePaymentReference(paymentReference(entities.PaymentSubjectServiceRequest, "abc"))
	require.True(t, ok)
	assert.Equal(t, entities.PaymentSubjectServiceRequest, subject)
	assert.Equal(t, "abc", id)

	for _, bad := range []string{"", "quote:", "invoice:1", "abc"} {
		_, _, ok := parsePaymentReference(bad)
		assert.False(t, ok, bad)
	}
}
