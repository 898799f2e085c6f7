// Package summary implements the HTTP handler for the admin dashboard
// block: user/plan/subscription counts, revenue totals and the revenue
// grouping per country, all derived from the cached snapshots.
package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/stats"
)

// Handler serves the dashboard summary endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the summary derivation.
type Service interface {
	Summary(ctx context.Context) (stats.Summary, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Dashboard summary
// @Description Derived counts, revenue totals and revenue per country.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]any "Summary block"
// @Failure 500 {object} response.ErrorResponse "Backend unavailable"
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.summary"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.Summary(r.Context())
	if err != nil {
		log.Error("failed to build summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load dashboard summary"))
		return
	}

	log.Info("summary built", slog.Int("total_invoices", result.TotalInvoices))
	render.JSON(w, r, response.StatusOKWithData(result))
}
