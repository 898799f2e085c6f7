// Package changestate implements the admin HTTP handler setting an invoice
// to any member of the closed state enum. The only client-side gate is enum
// membership; the backend decides whether the transition is legal.
package changestate

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

// Handler serves the change-invoice-state endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the change-state transition.
type Service interface {
	ChangeState(ctx context.Context, id int64, state models.InvoiceState) (*models.Invoice, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.changestate"
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

	state := models.InvoiceState(chi.URLParam(r, "state"))
	if !state.Valid() {
		log.Error("state outside the closed enum", slog.String("state", string(state)))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown invoice state"))
		return
	}

	invoice, err := h.service.ChangeState(r.Context(), id, state)
	switch {
	case errors.Is(err, services.ErrPrecondition):
		log.Error("change-state rejected", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown invoice state"))
		return
	case errors.Is(err, collaborator.ErrNotFound):
		log.Error("invoice not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("invoice not found"))
		return
	case err != nil:
		log.Error("failed to change invoice state", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not change invoice state"))
		return
	}

	log.Info("invoice state changed", slog.Int64("id", id), slog.String("state", string(state)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"invoice":  invoice,
		"category": invoice.State.Category(),
	}))
}
