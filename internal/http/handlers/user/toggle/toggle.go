// Package toggle implements the admin HTTP handler flipping a user's
// active flag. The flip is applied locally only after the backend
// confirmed the update; a rejected call leaves the list untouched.
package toggle

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
)

// Handler serves the toggle-user-active endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the toggle transition.
type Service interface {
	ToggleActive(ctx context.Context, id int64) (*models.User, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.toggle"
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

	user, err := h.service.ToggleActive(r.Context(), id)
	switch {
	case errors.Is(err, collaborator.ErrNotFound):
		log.Error("user not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	case err != nil:
		log.Error("failed to toggle user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle user"))
		return
	}

	log.Info("user toggled", slog.Int64("id", id), slog.Bool("active", user.Active))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
