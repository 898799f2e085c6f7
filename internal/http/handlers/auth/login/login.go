// Package login implements the HTTP handler bootstrapping a portal session.
//
// Handler forwards the credentials to the billing backend and, when the
// backend accepts them, answers with a signed portal token carrying the
// backend-assigned role.
package login

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

// Handler serves the login endpoint.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the session bootstrap logic.
type Service interface {
	Login(ctx context.Context, req models.DummyLogin) (string, *models.Session, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Log in
// @Description Forwards credentials to the billing backend and returns a portal session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.DummyLogin true "Credentials"
// @Success 200 {object} map[string]any "Token and session"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Rejected credentials"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLogin
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

	token, session, err := h.service.Login(r.Context(), req)
	if err != nil {
		log.Error("login rejected", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}

	log.Info("login succeeded", slog.Int64("user_id", session.UserID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token":   token,
		"session": session,
	}))
}
