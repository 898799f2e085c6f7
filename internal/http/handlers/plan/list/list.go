// Package list implements the HTTP handler listing plans. With
// ?active=true only the currently offered tiers are returned (the
// self-service plan picker); without it the full catalogue (admin view).
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// Handler serves the plan list endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the plan reads the handler needs.
type Service interface {
	List(ctx context.Context) ([]models.Plan, error)
	ListActive(ctx context.Context) ([]models.Plan, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var (
		plans []models.Plan
		err   error
	)
	if r.URL.Query().Get("active") == "true" {
		plans, err = h.service.ListActive(r.Context())
	} else {
		plans, err = h.service.List(r.Context())
	}
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list plans"))
		return
	}

	log.Info("plans listed", slog.Int("count", len(plans)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(plans),
		"plans":      plans,
	}))
}
