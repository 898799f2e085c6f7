package save

import (
	"bytes"
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

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}
func (m *MockService) Update(ctx context.Context, id int64, req models.DummyPlan) (*models.Plan, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func TestSaveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validBody := `{"name":"Premium","planType":"PREMIUM","monthlyPrice":29.99,"maxUsers":10,"storageGb":100,"active":true}`

	tests := []struct {
		name           string
		urlID          string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "create without url id",
			urlID: "",
			body:  validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(req models.DummyPlan) bool {
					return req.Name == "Premium" && req.PlanType == "PREMIUM"
				})).Return(&models.Plan{ID: 2, Name: "Premium"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Premium"`,
		},
		{
			name:  "update with url id",
			urlID: "2",
			body:  validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(2), mock.Anything).
					Return(&models.Plan{ID: 2, Name: "Premium"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":2`,
		},
		{
			name:           "plan type outside the closed enum",
			urlID:          "",
			body:           `{"name":"Free","planType":"FREE","monthlyPrice":0}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field PlanType has a value outside the allowed set`,
		},
		{
			name:           "negative price",
			urlID:          "",
			body:           `{"name":"Broken","planType":"BASIC","monthlyPrice":-5}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field MonthlyPrice must not be negative`,
		},
		{
			name:           "broken json",
			urlID:          "",
			body:           `{"name":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(tt.body))
			rctx := chi.NewRouteContext()
			if tt.urlID != "" {
				rctx.URLParams.Add("id", tt.urlID)
			}
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
