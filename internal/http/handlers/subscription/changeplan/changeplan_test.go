package changeplan

import (
	"bytes"
	"context"
	"fmt"
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
	"github.com/magabrotheeeer/billing-portal/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ChangePlan(ctx context.Context, userID, planID int64) (*models.Subscription, error) {
	args := m.Called(ctx, userID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func TestChangePlanHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		sessionUser    any
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "plan changed",
			body:        `{"plan_id":2}`,
			sessionUser: int64(10),
			setupMock: func(m *MockService) {
				m.On("ChangePlan", mock.Anything, int64(10), int64(2)).
					Return(&models.Subscription{ID: 6, UserID: 10, PlanID: 2, State: models.SubscriptionActive}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"planId":2`,
		},
		{
			name:           "missing plan id",
			body:           `{}`,
			sessionUser:    int64(10),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field PlanID is a required field`,
		},
		{
			name:           "no session identity",
			body:           `{"plan_id":2}`,
			sessionUser:    nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:        "already on the plan",
			body:        `{"plan_id":2}`,
			sessionUser: int64(10),
			setupMock: func(m *MockService) {
				m.On("ChangePlan", mock.Anything, int64(10), int64(2)).
					Return(nil, fmt.Errorf("%w: already holds plan", services.ErrPrecondition))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"plan change not possible"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/subscriptions/changeplan", bytes.NewBufferString(tt.body))
			if tt.sessionUser != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, tt.sessionUser))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
