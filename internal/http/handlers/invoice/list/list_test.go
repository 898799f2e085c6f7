package list

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/billing-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/billing-portal/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		url            string
		sessionUser    int64
		role           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "regular user is pinned to own invoices",
			url:         "/invoices?user_id=99&state=PAGADA",
			sessionUser: 10,
			role:        "user",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.InvoiceFilter{UserID: 10}).
					Return([]models.Invoice{
						{ID: 1, UserID: 10, Total: 121, State: models.InvoicePending,
							Concept: "Suscripción BASIC - España - 2025-01"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"country":"España"`,
		},
		{
			name:        "admin state filter reaches the service",
			url:         "/invoices?state=VENCIDA",
			sessionUser: 1,
			role:        "admin",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.InvoiceFilter{State: models.InvoiceOverdue}).
					Return([]models.Invoice{{ID: 2, Total: 50, State: models.InvoiceOverdue}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"category":"negative"`,
		},
		{
			name:        "response carries the revenue total",
			url:         "/invoices",
			sessionUser: 1,
			role:        "admin",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.InvoiceFilter{}).
					Return([]models.Invoice{
						{ID: 1, Total: 100, State: models.InvoicePending},
						{ID: 2, Total: 50, State: models.InvoicePaid},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total":150`,
		},
		{
			name:           "broken amount filter",
			url:            "/invoices?min=abc",
			sessionUser:    1,
			role:           "admin",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid filter parameters"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			ctx := context.WithValue(req.Context(), middlewarectx.UserID, tt.sessionUser)
			ctx = context.WithValue(ctx, middlewarectx.Role, tt.role)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
