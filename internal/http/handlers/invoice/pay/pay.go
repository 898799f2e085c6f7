// Package pay implements the HTTP handler for the mark-invoice-paid
// transition (PENDIENTE -> PAGADA).
package pay

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

// Handler serves the pay-invoice endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the pay transition.
type Service interface {
	Pay(ctx context.Context, id int64) (*models.Invoice, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Mark an invoice paid
// @Description Requests the PENDIENTE -> PAGADA transition. Fails with 409 when the invoice is not PENDIENTE.
// @Tags Invoices
// @Produce json
// @Param id path int true "Invoice id"
// @Success 200 {object} map[string]any "Paid invoice"
// @Failure 400 {object} response.ErrorResponse "Invalid id"
// @Failure 404 {object} response.ErrorResponse "Unknown invoice"
// @Failure 409 {object} response.ErrorResponse "Precondition failed"
// @Failure 500 {object} response.ErrorResponse "Backend rejected the transition"
// @Security BearerAuth
// @Router /invoices/{id}/pay [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.pay"
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

	invoice, err := h.service.Pay(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrPrecondition):
		log.Error("pay precondition failed", sl.Err(err))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("invoice is not pending"))
		return
	case errors.Is(err, collaborator.ErrNotFound):
		log.Error("invoice not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("invoice not found"))
		return
	case err != nil:
		log.Error("failed to pay invoice", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not mark invoice paid"))
		return
	}

	log.Info("invoice paid", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"invoice":  invoice,
		"category": invoice.State.Category(),
	}))
}
