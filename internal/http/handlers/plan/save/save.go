// Package save implements the admin HTTP handler creating or updating a
// plan: POST /plans creates, PUT /plans/{id} updates, one handler for
// both since the body is identical.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/billing-portal/internal/collaborator"
	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// Handler serves the plan create/update endpoints.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the plan writes.
type Service interface {
	Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error)
	Update(ctx context.Context, id int64, req models.DummyPlan) (*models.Plan, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.save"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPlan
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	var (
		plan *models.Plan
		err  error
	)
	if raw := chi.URLParam(r, "id"); raw != "" {
		var id int64
		id, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Error("failed to decode id from url", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode id from url"))
			return
		}
		plan, err = h.service.Update(r.Context(), id, req)
	} else {
		plan, err = h.service.Create(r.Context(), req)
	}
	switch {
	case errors.Is(err, collaborator.ErrNotFound):
		log.Error("plan not found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("plan not found"))
		return
	case err != nil:
		log.Error("failed to save plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save plan"))
		return
	}

	log.Info("plan saved", slog.Int64("id", plan.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plan": plan,
	}))
}
