package summary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/billing-portal/internal/stats"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Summary(ctx context.Context) (stats.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(stats.Summary), args.Error(1)
}

func TestSummaryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "summary rendered",
			setupMock: func(m *MockService) {
				m.On("Summary", mock.Anything).Return(stats.Summary{
					TotalUsers:     3,
					TotalInvoices:  2,
					TotalRevenue:   150,
					PendingRevenue: 100,
					PaidRevenue:    50,
					RevenueByCountry: map[string]float64{
						"España": 100,
						"México": 50,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_revenue":150`,
		},
		{
			name: "backend unavailable",
			setupMock: func(m *MockService) {
				m.On("Summary", mock.Anything).
					Return(stats.Summary{}, errors.New("backend down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not load dashboard summary"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
