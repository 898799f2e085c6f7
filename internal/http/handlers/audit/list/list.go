// Package list implements the admin HTTP handler exposing the audit
// trail. The entity collection is a URL param; an optional ?id narrows
// the trail to one record's revisions.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/response"
	"github.com/magabrotheeeer/billing-portal/internal/lib/sl"
	"github.com/magabrotheeeer/billing-portal/internal/models"
	"github.com/magabrotheeeer/billing-portal/internal/services"
)

// Handler serves the audit trail endpoint.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the audit reads.
type Service interface {
	History(ctx context.Context, entity string) ([]models.AuditRecord, error)
	Record(ctx context.Context, entity string, id int64) ([]models.AuditRecord, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.audit.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entity := chi.URLParam(r, "entity")

	var (
		records []models.AuditRecord
		err     error
	)
	if raw := r.URL.Query().Get("id"); raw != "" {
		var id int64
		id, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Error("failed to decode id from query", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode id from query"))
			return
		}
		records, err = h.service.Record(r.Context(), entity, id)
	} else {
		records, err = h.service.History(r.Context(), entity)
	}
	switch {
	case errors.Is(err, services.ErrPrecondition):
		log.Error("unknown audit entity", slog.String("entity", entity))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("unknown audit entity"))
		return
	case err != nil:
		log.Error("failed to load audit trail", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load audit trail"))
		return
	}

	log.Info("audit trail loaded", slog.String("entity", entity), slog.Int("count", len(records)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(records),
		"records":    records,
	}))
}
