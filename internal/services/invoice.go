package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// InvoiceAPI describes the backend calls the invoice service uses.
type InvoiceAPI interface {
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	ListInvoicesByUser(ctx context.Context, userID int64) ([]models.Invoice, error)
	ListInvoicesByState(ctx context.Context, state models.InvoiceState) ([]models.Invoice, error)
	ListOverdueInvoices(ctx context.Context) ([]models.Invoice, error)
	FilterInvoicesByDate(ctx context.Context, from, to string) ([]models.Invoice, error)
	FilterInvoicesByAmount(ctx context.Context, min, max float64) ([]models.Invoice, error)
	PayInvoice(ctx context.Context, id int64) (*models.Invoice, error)
	ChangeInvoiceState(ctx context.Context, id int64, state models.InvoiceState) (*models.Invoice, error)
	TaxTable(ctx context.Context) (map[string]float64, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceService implements the invoice snapshot, its list filters and its
// lifecycle transitions.
type InvoiceService struct {
	api   InvoiceAPI
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewInvoiceService creates an InvoiceService.
func NewInvoiceService(api InvoiceAPI, cache Cache, ttl time.Duration, log *slog.Logger) *InvoiceService {
	return &InvoiceService{api: api, cache: cache, ttl: ttl, log: log}
}

// List returns invoices matching the filter. The unfiltered list is served
// from the snapshot cache; filtered views always go to the backend, which
// owns the filter semantics.
func (s *InvoiceService) List(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	switch {
	case filter.Overdue:
		return s.api.ListOverdueInvoices(ctx)
	case filter.State != "":
		if !filter.State.Valid() {
			return nil, fmt.Errorf("%w: unknown invoice state %q", ErrPrecondition, filter.State)
		}
		return s.api.ListInvoicesByState(ctx, filter.State)
	case filter.UserID != 0:
		return s.api.ListInvoicesByUser(ctx, filter.UserID)
	case filter.From != "" || filter.To != "":
		return s.api.FilterInvoicesByDate(ctx, filter.From, filter.To)
	case filter.MinAmount != nil || filter.MaxAmount != nil:
		var min, max float64
		if filter.MinAmount != nil {
			min = *filter.MinAmount
		}
		max = maxAmountOrDefault(filter.MaxAmount)
		return s.api.FilterInvoicesByAmount(ctx, min, max)
	}
	return s.snapshot(ctx)
}

// maxAmountOrDefault keeps an open upper bound usable against the backend's
// required max parameter.
func maxAmountOrDefault(max *float64) float64 {
	if max != nil {
		return *max
	}
	return 1e12
}

func (s *InvoiceService) snapshot(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	found, err := s.cache.Get(ctx, keyInvoices, &invoices)
	if err != nil {
		s.log.Warn("failed to read invoices from cache", slog.Any("err", err))
	}
	if found {
		return invoices, nil
	}
	invoices, err = s.api.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, keyInvoices, invoices, s.ttl); err != nil {
		s.log.Warn("failed to cache invoices", slog.Any("err", err))
	}
	return invoices, nil
}

// Pay requests the PENDIENTE -> PAGADA transition. The advisory
// precondition requires the snapshot copy to be PENDIENTE; otherwise no
// backend call is issued.
func (s *InvoiceService) Pay(ctx context.Context, id int64) (*models.Invoice, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := findInvoice(snapshot, id)
	if !ok {
		return nil, fmt.Errorf("%w: invoice %d not in snapshot", ErrPrecondition, id)
	}
	if current.State != models.InvoicePending {
		return nil, fmt.Errorf("%w: invoice %d is %s, not %s", ErrPrecondition, id, current.State, models.InvoicePending)
	}

	paid, err := s.api.PayInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("invoice paid", slog.Int64("id", id))
	s.refresh(ctx)
	return paid, nil
}

// ChangeState is the admin transition to any member of the closed enum.
// The only client-side gate is enum membership; the backend decides whether
// the transition is legal.
func (s *InvoiceService) ChangeState(ctx context.Context, id int64, state models.InvoiceState) (*models.Invoice, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice state %q", ErrPrecondition, state)
	}
	changed, err := s.api.ChangeInvoiceState(ctx, id, state)
	if err != nil {
		return nil, err
	}
	s.log.Info("invoice state changed", slog.Int64("id", id), slog.String("state", string(state)))
	s.refresh(ctx)
	return changed, nil
}

// Remove deletes an invoice. The snapshot is only touched after the
// backend confirmed the delete.
func (s *InvoiceService) Remove(ctx context.Context, id int64) error {
	if err := s.api.DeleteInvoice(ctx, id); err != nil {
		return err
	}
	s.log.Info("invoice removed", slog.Int64("id", id))
	s.refresh(ctx)
	return nil
}

// Taxes returns the VAT table per country, cached alongside the snapshots.
func (s *InvoiceService) Taxes(ctx context.Context) (map[string]float64, error) {
	taxes := make(map[string]float64)
	found, err := s.cache.Get(ctx, keyTaxes, &taxes)
	if err != nil {
		s.log.Warn("failed to read tax table from cache", slog.Any("err", err))
	}
	if found {
		return taxes, nil
	}
	taxes, err = s.api.TaxTable(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, keyTaxes, taxes, s.ttl); err != nil {
		s.log.Warn("failed to cache tax table", slog.Any("err", err))
	}
	return taxes, nil
}

func (s *InvoiceService) refresh(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, keyInvoices); err != nil {
		s.log.Warn("failed to invalidate invoice snapshot", slog.Any("err", err))
	}
	if _, err := s.snapshot(ctx); err != nil {
		s.log.Warn("failed to refetch invoice snapshot", slog.Any("err", err))
	}
}

func findInvoice(invoices []models.Invoice, id int64) (models.Invoice, bool) {
	for _, inv := range invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return models.Invoice{}, false
}
