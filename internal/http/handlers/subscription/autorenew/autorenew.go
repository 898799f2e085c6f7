// Package autorenew implements the admin HTTP handler flipping a
// subscription's auto-renew flag. The flag is written back as a full
// update; a rejected call leaves the snapshot untouched.
package autorenew

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/collaborator"
	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/models"
	"github.com/magabrotheeeer/billing-portal/internal/services"
)

// Handler serves the toggle-auto-renew endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the toggle transition.
type Service interface {
	ToggleAutoRenew(ctx context.Context, id int64) (*models.Subscription, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Toggle a subscription's auto-renew flag
// @Description Flips autoRenew on the subscription and writes it back as a full update.
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription id"
// @Success 200 {object} map[string]any "Updated subscription"
// @Failure 400 {object} response.ErrorResponse "Invalid id"
// @Failure 404 {object} response.ErrorResponse "Unknown subscription"
// @Failure 409 {object} response.ErrorResponse "Subscription not in snapshot"
// @Failure 500 {object} response.ErrorResponse "Backend rejected the update"
// @Security BearerAuth
// @Router /subscriptions/{id}/autorenew [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.autorenew"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	sub, err := h.service.ToggleAutoRenew(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrPrecondition):
		log.Error("toggle precondition failed", sl.Err(err))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("subscription not in snapshot"))
		return
	case errors.Is(err, collaborator.ErrNotFound):
		log.Error("subscription not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("subscription not found"))
		return
	case err != nil:
		log.Error("failed to toggle auto-renew", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle auto-renew"))
		return
	}

	log.Info("auto-renew toggled", slog.Int64("id", id), slog.Bool("auto_renew", sub.AutoRenew))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subscription": sub,
		"category":     sub.State.Category(),
	}))
}
