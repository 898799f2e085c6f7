// Package list implements the HTTP handler listing subscriptions.
//
// Admins see the whole collection or a per-user/per-state filter; regular
// users always and only see their own subscriptions. Each record carries
// its display category so views never interpret raw states.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/models"
	"github.com/magabrotheeeer/billing-portal/internal/services"
)

// Handler serves the subscription list endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the subscription reads the handler needs.
type Service interface {
	List(ctx context.Context) ([]models.Subscription, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Subscription, error)
	ListByState(ctx context.Context, state models.SubscriptionState) ([]models.Subscription, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// item is a subscription plus its render category.
type item struct {
	models.Subscription
	Category models.Category `json:"category"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"
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

	var (
		subs []models.Subscription
		err  error
	)
	switch {
	case role != "admin":
		subs, err = h.service.ListByUser(r.Context(), userID)
	case r.URL.Query().Get("user_id") != "":
		var id int64
		id, err = strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil {
			log.Error("invalid user_id query parameter", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user_id"))
			return
		}
		subs, err = h.service.ListByUser(r.Context(), id)
	case r.URL.Query().Get("state") != "":
		subs, err = h.service.ListByState(r.Context(), models.SubscriptionState(r.URL.Query().Get("state")))
	default:
		subs, err = h.service.List(r.Context())
	}
	if errors.Is(err, services.ErrPrecondition) {
		log.Error("invalid state filter", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown subscription state"))
		return
	}
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list subscriptions"))
		return
	}

	items := make([]item, 0, len(subs))
	for _, sub := range subs {
		items = append(items, item{Subscription: sub, Category: sub.State.Category()})
	}

	log.Info("subscriptions listed", slog.Int("count", len(items)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count":    len(items),
		"subscriptions": items,
	}))
}
