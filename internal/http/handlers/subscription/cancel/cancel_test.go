package cancel

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/magabrotheeeer/billing-portal/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Cancel(ctx context.Context, id int64) (*models.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func TestCancelHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "active subscription is cancelled",
			id:   "7",
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, int64(7)).
					Return(&models.Subscription{ID: 7, State: models.SubscriptionCancelled}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"category":"neutral"`,
		},
		{
			name:           "invalid id",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode id from url"`,
		},
		{
			name: "precondition failed",
			id:   "7",
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, int64(7)).
					Return(nil, fmt.Errorf("%w: not active", services.ErrPrecondition))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"subscription is not active"`,
		},
		{
			name: "unknown subscription",
			id:   "7",
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, int64(7)).
					Return(nil, collaborator.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"subscription not found"`,
		},
		{
			name: "backend rejected the transition",
			id:   "7",
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, int64(7)).
					Return(nil, errors.New("backend says no"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not cancel subscription"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/subscriptions/"+tt.id+"/cancel", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
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
