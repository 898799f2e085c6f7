// Package register implements the HTTP handler creating a new account
// through the billing backend and starting a portal session for it.
package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// Handler serves the registration endpoint.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the registration logic.
type Service interface {
	Register(ctx context.Context, req models.DummyRegister) (string, *models.Session, error)
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
	const op = "handlers.auth.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRegister
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

	token, session, err := h.service.Register(r.Context(), req)
	if err != nil {
		log.Error("registration rejected", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("registration succeeded", slog.Int64("user_id", session.UserID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token":   token,
		"session": session,
	}))
}
