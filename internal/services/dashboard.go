package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/billing-portal/internal/models"
	"github.com/magabrotheeeer/billing-portal/internal/stats"
)

// UserLister, PlanLister, SubscriptionLister and InvoiceLister are the
// snapshot reads the dashboard composes. They are satisfied by the entity
// services so the summary is derived from the same cached collections the
// tables render.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

type PlanLister interface {
	List(ctx context.Context) ([]models.Plan, error)
}

type SubscriptionLister interface {
	List(ctx context.Context) ([]models.Subscription, error)
}

type InvoiceLister interface {
	List(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error)
}

// DashboardService derives the admin summary block.
type DashboardService struct {
	users UserLister
	plans PlanLister
	subs  SubscriptionLister
	invs  InvoiceLister
	log   *slog.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(users UserLister, plans PlanLister, subs SubscriptionLister, invs InvoiceLister, log *slog.Logger) *DashboardService {
	return &DashboardService{users: users, plans: plans, subs: subs, invs: invs, log: log}
}

// Summary fetches the four collections and derives the dashboard numbers.
// Pure aggregation happens in the stats package; this method only gathers
// inputs.
func (s *DashboardService) Summary(ctx context.Context) (stats.Summary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	subs, err := s.subs.List(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	invoices, err := s.invs.List(ctx, models.InvoiceFilter{})
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.BuildSummary(users, plans, subs, invoices), nil
}
