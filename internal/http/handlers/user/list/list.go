// Package list implements the admin HTTP handler listing users.
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

// Handler serves the user list endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the user reads the handler needs.
type Service interface {
	List(ctx context.Context) ([]models.User, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// item is a user with the country defaulted for display.
type item struct {
	models.User
	Country string `json:"country"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}

	items := make([]item, 0, len(users))
	for _, user := range users {
		items = append(items, item{User: user, Country: user.DisplayCountry()})
	}

	log.Info("users listed", slog.Int("count", len(items)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(items),
		"users":      items,
	}))
}
