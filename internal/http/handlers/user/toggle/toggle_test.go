package toggle

import (
	"context"
	"errors"
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

func (m *MockService) ToggleActive(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestToggleHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "user deactivated",
			id:   "10",
			setupMock: func(m *MockService) {
				m.On("ToggleActive", mock.Anything, int64(10)).
					Return(&models.User{ID: 10, Active: false}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"active":false`,
		},
		{
			name:           "invalid id",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode id from url"`,
		},
		{
			name: "unknown user",
			id:   "10",
			setupMock: func(m *MockService) {
				m.On("ToggleActive", mock.Anything, int64(10)).
					Return(nil, collaborator.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"user not found"`,
		},
		{
			name: "backend rejected the update",
			id:   "10",
			setupMock: func(m *MockService) {
				m.On("ToggleActive", mock.Anything, int64(10)).
					Return(nil, errors.New("backend says no"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not toggle user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id+"/toggle", nil)
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
