package collaborator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

func TestClientListPlans(t *testing.T) {
	var gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/plans", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		gotRequestID = r.Header.Get("X-Request-Id")

		_ = json.NewEncoder(w).Encode([]models.Plan{
			{ID: 1, Name: "Basic", PlanType: models.PlanBasic, MonthlyPrice: 9.99, Active: true},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)

	plans, err := client.ListPlans(context.Background())

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Basic", plans[0].Name)
	assert.NotEmpty(t, gotRequestID, "every backend call must carry a request id")
}

func TestClientGetUserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)

	user, err := client.GetUser(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, user)
}

func TestClientServerErrorPreservesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)

	_, err := client.ListInvoices(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Body, "boom")
}

func TestClientPayInvoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/invoices/4/pay", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.Invoice{ID: 4, State: models.InvoicePaid})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)

	invoice, err := client.PayInvoice(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, invoice.State)
}

func TestClientFilterInvoicesByAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices/filter/amount", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("min"))
		assert.Equal(t, "100", r.URL.Query().Get("max"))

		_ = json.NewEncoder(w).Encode([]models.Invoice{})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)

	_, err := client.FilterInvoicesByAmount(context.Background(), 10, 100)
	require.NoError(t, err)
}

func TestClientDeletePlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/plans/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)

	assert.NoError(t, client.DeletePlan(context.Background(), 7))
}
