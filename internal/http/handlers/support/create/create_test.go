package create

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
	"github.com/magabrotheeeer/demo-storefront/internal/services/auth"
	"github.com/magabrotheeeer/demo-storefront/internal/services/support"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, token, topic, detail string) (*models.SupportTicket, error) {
	args := m.Called(ctx, token, topic, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupportTicket), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name:        "нет сессии",
			requestBody: `{"token":"bad","topic":"billing","detail":"help"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "bad", "billing", "help").
					Return(nil, auth.ErrAuthRequired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"auth required"}`,
		},
		{
			name:        "пустые поля обращения",
			requestBody: `{"token":"token","topic":"","detail":""}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "token", "", "").
					Return(nil, support.ErrMissingFields)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"topic and detail are required"}`,
		},
		{
			name:        "тикет создан",
			requestBody: `{"token":"token","topic":"billing","detail":"help"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "token", "billing", "help").
					Return(&models.SupportTicket{
						ID:        "tkt_test",
						Email:     "qa@x.com",
						Topic:     "billing",
						Detail:    "help",
						CreatedAt: createdAt,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"ok":true,"ticket":{"id":"tkt_test","email":"qa@x.com","topic":"billing","detail":"help","createdAt":"2025-06-01T12:00:00Z"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(newNoopLogger(), mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/support", bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
