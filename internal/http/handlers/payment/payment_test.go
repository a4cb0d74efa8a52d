package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wix-messenger/backend/internal/lib/apperr"
	paymentservice "github.com/wix-messenger/backend/internal/services/payment"
)

// Мок сервиса платежей
type PaymentServiceMock struct {
	mock.Mock
}

func (m *PaymentServiceMock) ProcessPayment(ctx context.Context, userID int64, method string, amount float64) (*paymentservice.Receipt, error) {
	args := m.Called(ctx, userID, method, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentservice.Receipt), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func float64Ptr(v float64) *float64 { return &v }

func TestPaymentHandler_ServeHTTP(t *testing.T) {
	expiresAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	receipt := &paymentservice.Receipt{
		PaymentID:        42,
		TransactionID:    "WIX-9F86D081884C7D65",
		Status:           "completed",
		PremiumExpiresAt: expiresAt,
	}

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		setupMock      func(m *PaymentServiceMock)
		wantStatusCode int
		wantSuccess    bool
		wantError      string
		wantEmptyBody  bool
	}{
		{
			name:   "valid payment with explicit amount",
			method: http.MethodPost,
			requestBody: Request{
				UserID:        1,
				PaymentMethod: "card",
				Amount:        float64Ptr(499),
			},
			setupMock: func(m *PaymentServiceMock) {
				m.On("ProcessPayment", mock.Anything, int64(1), "card", float64(499)).
					Return(receipt, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantSuccess:    true,
		},
		{
			name:   "amount defaults to 299",
			method: http.MethodPost,
			requestBody: Request{
				UserID:        1,
				PaymentMethod: "sbp",
			},
			setupMock: func(m *PaymentServiceMock) {
				m.On("ProcessPayment", mock.Anything, int64(1), "sbp", float64(299)).
					Return(receipt, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantSuccess:    true,
		},
		{
			name:           "invalid json body",
			method:         http.MethodPost,
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:   "missing user_id",
			method: http.MethodPost,
			requestBody: Request{
				PaymentMethod: "card",
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field UserID is a required field",
		},
		{
			name:   "missing payment method",
			method: http.MethodPost,
			requestBody: Request{
				UserID: 1,
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field PaymentMethod is a required field",
		},
		{
			name:   "unsupported payment method",
			method: http.MethodPost,
			requestBody: Request{
				UserID:        1,
				PaymentMethod: "cash",
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field PaymentMethod must be one of: sbp card",
		},
		{
			name:   "storage failure",
			method: http.MethodPost,
			requestBody: Request{
				UserID:        1,
				PaymentMethod: "sbp",
			},
			setupMock: func(m *PaymentServiceMock) {
				m.On("ProcessPayment", mock.Anything, int64(1), "sbp", float64(299)).
					Return(nil, apperr.Server("failed to process payment", assert.AnError)).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to process payment",
		},
		{
			name:           "options preflight",
			method:         http.MethodOptions,
			wantStatusCode: http.StatusOK,
			wantEmptyBody:  true,
		},
		{
			name:           "delete not allowed",
			method:         http.MethodDelete,
			wantStatusCode: http.StatusMethodNotAllowed,
			wantError:      "method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentMock := new(PaymentServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(paymentMock)
			}
			handler := New(newNoopLogger(), paymentMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case nil:
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(tt.method, "/", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantEmptyBody {
				assert.Empty(t, rec.Body.String())
				paymentMock.AssertExpectations(t)
				return
			}

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			}

			if tt.wantSuccess {
				assert.Equal(t, true, got["success"])
				assert.Equal(t, float64(receipt.PaymentID), got["payment_id"])
				assert.Equal(t, receipt.TransactionID, got["transaction_id"])
				assert.Equal(t, "completed", got["status"])
				assert.Equal(t, expiresAt.Format(time.RFC3339), got["premium_expires_at"])
				assert.Equal(t, "Платёж успешно обработан! Премиум активирован на 30 дней", got["message"])
			}

			paymentMock.AssertExpectations(t)
		})
	}
}
