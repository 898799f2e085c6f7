package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// AuditAPI describes the backend calls the audit service uses.
type AuditAPI interface {
	AuditSubscriptions(ctx context.Context) ([]models.AuditRecord, error)
	AuditUsers(ctx context.Context) ([]models.AuditRecord, error)
	AuditEntity(ctx context.Context, entity string, id int64) ([]models.AuditRecord, error)
}

// AuditService exposes the server-owned, append-only change history.
// Never cached: the history viewer always shows the authoritative trail.
type AuditService struct {
	api AuditAPI
	log *slog.Logger
}

// NewAuditService creates an AuditService.
func NewAuditService(api AuditAPI, log *slog.Logger) *AuditService {
	return &AuditService{api: api, log: log}
}

// History returns the change history of one entity collection.
func (s *AuditService) History(ctx context.Context, entity string) ([]models.AuditRecord, error) {
	switch entity {
	case "subscriptions":
		return s.api.AuditSubscriptions(ctx)
	case "users":
		return s.api.AuditUsers(ctx)
	}
	return nil, fmt.Errorf("%w: no audit trail for entity %q", ErrPrecondition, entity)
}

// Record returns the revision trail of one record.
func (s *AuditService) Record(ctx context.Context, entity string, id int64) ([]models.AuditRecord, error) {
	if entity != "subscriptions" && entity != "users" {
		return nil, fmt.Errorf("%w: no audit trail for entity %q", ErrPrecondition, entity)
	}
	return s.api.AuditEntity(ctx, entity, id)
}
