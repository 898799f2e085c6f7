package changestate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/billing-portal/internal/collaborator"
	"github.com/magabrotheeeer/billing-portal/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ChangeState(ctx context.Context, id int64, state models.InvoiceState) (*models.Invoice, error) {
	args := m.Called(ctx, id, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func TestChangeStateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		state          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "refund transition",
			id:    "4",
			state: "REEMBOLSADA",
			setupMock: func(m *MockService) {
				m.On("ChangeState", mock.Anything, int64(4), models.InvoiceRefunded).
					Return(&models.Invoice{ID: 4, State: models.InvoiceRefunded}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"category":"neutral"`,
		},
		{
			name:           "state outside the closed enum",
			id:             "4",
			state:          "GARBAGE",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"unknown invoice state"`,
		},
		{
			name:           "invalid id",
			id:             "abc",
			state:          "PAGADA",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode id from url"`,
		},
		{
			name:  "unknown invoice",
			id:    "4",
			state: "PAGADA",
			setupMock: func(m *MockService) {
				m.On("ChangeState", mock.Anything, int64(4), models.InvoicePaid).
					Return(nil, collaborator.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"invoice not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/invoices/"+tt.id+"/state/"+tt.state, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			rctx.URLParams.Add("state", tt.state)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
