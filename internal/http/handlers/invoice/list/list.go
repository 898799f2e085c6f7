// Package list implements the HTTP handler listing invoices.
//
// Admins may apply the backend filters (state, overdue, issue-date range,
// amount range, user); regular users always and only see their own
// invoices. Each record carries its display category and grouping country.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/models"
	"github.com/magabrotheeeer/billing-portal/internal/stats"
)

// Handler serves the invoice list endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the invoice reads the handler needs.
type Service interface {
	List(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// item is an invoice plus its derived display fields.
type item struct {
	models.Invoice
	Category models.Category `json:"category"`
	Country  string          `json:"country"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	role, _ := r.Context().Value(middlewarectx.Role).(string)

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Error("invalid filter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid filter parameters"))
		return
	}
	if role != "admin" {
		// Non-admins are pinned to their own invoices whatever they ask for.
		filter = models.InvoiceFilter{UserID: userID}
	}

	invoices, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list invoices", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list invoices"))
		return
	}

	items := make([]item, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, item{
			Invoice:  inv,
			Category: inv.State.Category(),
			Country:  stats.CountryOf(inv),
		})
	}

	log.Info("invoices listed", slog.Int("count", len(items)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(items),
		"invoices":   items,
		"total":      stats.TotalRevenue(invoices),
	}))
}

func filterFromQuery(r *http.Request) (models.InvoiceFilter, error) {
	q := r.URL.Query()
	filter := models.InvoiceFilter{
		State:   models.InvoiceState(q.Get("state")),
		From:    q.Get("from"),
		To:      q.Get("to"),
		Overdue: q.Get("overdue") == "true",
	}
	if raw := q.Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.InvoiceFilter{}, err
		}
		filter.UserID = id
	}
	if raw := q.Get("min"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.InvoiceFilter{}, err
		}
		filter.MinAmount = &min
	}
	if raw := q.Get("max"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.InvoiceFilter{}, err
		}
		filter.MaxAmount = &max
	}
	return filter, nil
}
