// Package cancel implements the HTTP handler for the cancel-subscription
// transition.
//
// The precondition (subscription is ACTIVA in the last snapshot) is
// advisory: when it fails no backend call is issued and the snapshot stays
// untouched. When the backend rejects the call anyway, the error is
// surfaced once and nothing changes locally.
package cancel

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

// Handler serves the cancel-subscription endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the cancel transition.
type Service interface {
	Cancel(ctx context.Context, id int64) (*models.Subscription, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Cancel a subscription
// @Description Requests the ACTIVA -> CANCELADA transition. Fails with 409 when the subscription is not ACTIVA.
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription id"
// @Success 200 {object} map[string]any "Cancelled subscription"
// @Failure 400 {object} response.ErrorResponse "Invalid id"
// @Failure 404 {object} response.ErrorResponse "Unknown subscription"
// @Failure 409 {object} response.ErrorResponse "Precondition failed"
// @Failure 500 {object} response.ErrorResponse "Backend rejected the transition"
// @Security BearerAuth
// @Router /subscriptions/{id}/cancel [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.cancel"
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

	sub, err := h.service.Cancel(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrPrecondition):
		log.Error("cancel precondition failed", sl.Err(err))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("subscription is not active"))
		return
	case errors.Is(err, collaborator.ErrNotFound):
		log.Error("subscription not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("subscription not found"))
		return
	case err != nil:
		log.Error("failed to cancel subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not cancel subscription"))
		return
	}

	log.Info("subscription cancelled", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subscription": sub,
		"category":     sub.State.Category(),
	}))
}
