// Package taxes implements the HTTP handler exposing the VAT table per
// country. The table is display data; all tax amounts on invoices arrive
// precomputed from the backend.
package taxes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
)

// Handler serves the tax table endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the tax table read.
type Service interface {
	Taxes(ctx context.Context) (map[string]float64, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.taxes"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	taxes, err := h.service.Taxes(r.Context())
	if err != nil {
		log.Error("failed to load tax table", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load tax table"))
		return
	}

	log.Info("tax table loaded", slog.Int("countries", len(taxes)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"taxes": taxes,
	}))
}
