package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// SubscriptionAPI describes the backend calls the subscription service uses.
type SubscriptionAPI interface {
	// ListSubscriptions returns every subscription.
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	// ListSubscriptionsByUser returns the subscriptions of one user.
	ListSubscriptionsByUser(ctx context.Context, userID int64) ([]models.Subscription, error)
	// ListSubscriptionsByState returns subscriptions in one state.
	ListSubscriptionsByState(ctx context.Context, state models.SubscriptionState) ([]models.Subscription, error)
	// CreateSubscription creates a subscription and returns the stored record.
	CreateSubscription(ctx context.Context, req models.DummySubscription) (*models.Subscription, error)
	// CancelSubscription requests ACTIVA -> CANCELADA.
	CancelSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	// ActivateSubscription requests the transition back to ACTIVA.
	ActivateSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	// UpdateSubscription replaces a subscription's mutable fields.
	UpdateSubscription(ctx context.Context, id int64, req models.DummySubscription) (*models.Subscription, error)
	// DeleteSubscription removes a subscription.
	DeleteSubscription(ctx context.Context, id int64) error
}

// PlanReader resolves the target plan during a change-plan transition.
// Satisfied by *PlanService.
type PlanReader interface {
	ListActive(ctx context.Context) ([]models.Plan, error)
}

// SubscriptionService implements the subscription snapshot and its
// lifecycle transitions.
type SubscriptionService struct {
	api   SubscriptionAPI
	plans PlanReader
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewSubscriptionService creates a SubscriptionService.
func NewSubscriptionService(api SubscriptionAPI, plans PlanReader, cache Cache, ttl time.Duration, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{api: api, plans: plans, cache: cache, ttl: ttl, log: log}
}

// List returns the full subscription snapshot, serving the cached copy
// when it is still fresh.
func (s *SubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	var subs []models.Subscription
	found, err := s.cache.Get(ctx, keySubscriptions, &subs)
	if err != nil {
		s.log.Warn("failed to read subscriptions from cache", slog.Any("err", err))
	}
	if found {
		return subs, nil
	}
	subs, err = s.api.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, keySubscriptions, subs, s.ttl); err != nil {
		s.log.Warn("failed to cache subscriptions", slog.Any("err", err))
	}
	return subs, nil
}

// ListByUser returns one user's subscriptions, always fresh.
func (s *SubscriptionService) ListByUser(ctx context.Context, userID int64) ([]models.Subscription, error) {
	return s.api.ListSubscriptionsByUser(ctx, userID)
}

// ListByState returns the subscriptions in one lifecycle state.
func (s *SubscriptionService) ListByState(ctx context.Context, state models.SubscriptionState) ([]models.Subscription, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("%w: unknown subscription state %q", ErrPrecondition, state)
	}
	return s.api.ListSubscriptionsByState(ctx, state)
}

// Cancel requests the ACTIVA -> CANCELADA transition. The advisory
// precondition requires the snapshot copy to be ACTIVA; otherwise no
// backend call is issued.
func (s *SubscriptionService) Cancel(ctx context.Context, id int64) (*models.Subscription, error) {
	snapshot, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := findSubscription(snapshot, id)
	if !ok {
		return nil, fmt.Errorf("%w: subscription %d not in snapshot", ErrPrecondition, id)
	}
	if !current.IsActive() {
		return nil, fmt.Errorf("%w: subscription %d is %s, not %s", ErrPrecondition, id, current.State, models.SubscriptionActive)
	}

	cancelled, err := s.api.CancelSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("subscription cancelled", slog.Int64("id", id))
	s.refresh(ctx)
	return cancelled, nil
}

// Activate requests the transition back to ACTIVA (admin action against
// server-driven states like MOROSA or SUSPENDIDA).
func (s *SubscriptionService) Activate(ctx context.Context, id int64) (*models.Subscription, error) {
	snapshot, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := findSubscription(snapshot, id)
	if !ok {
		return nil, fmt.Errorf("%w: subscription %d not in snapshot", ErrPrecondition, id)
	}
	if current.IsActive() {
		return nil, fmt.Errorf("%w: subscription %d is already %s", ErrPrecondition, id, models.SubscriptionActive)
	}

	activated, err := s.api.ActivateSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("subscription activated", slog.Int64("id", id))
	s.refresh(ctx)
	return activated, nil
}

// ChangePlan is the explicit two-step self-service transition: cancel the
// user's current ACTIVA subscription (when one exists), then create the new
// one. The backend invariant "at most one ACTIVA subscription per user" is
// never left to an implicit auto-cancel. When the cancel step fails nothing
// is created.
func (s *SubscriptionService) ChangePlan(ctx context.Context, userID, planID int64) (*models.Subscription, error) {
	plans, err := s.plans.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	var target *models.Plan
	for i := range plans {
		if plans[i].ID == planID {
			target = &plans[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: plan %d is not an active plan", ErrPrecondition, planID)
	}

	owned, err := s.api.ListSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, sub := range owned {
		if sub.IsActive() && sub.PlanID == planID {
			return nil, fmt.Errorf("%w: user %d already holds plan %d", ErrPrecondition, userID, planID)
		}
	}
	for _, sub := range owned {
		if sub.IsActive() {
			if _, err := s.api.CancelSubscription(ctx, sub.ID); err != nil {
				return nil, fmt.Errorf("cancel current subscription %d: %w", sub.ID, err)
			}
			s.log.Info("previous subscription cancelled before plan change",
				slog.Int64("subscription_id", sub.ID), slog.Int64("user_id", userID))
		}
	}

	created, err := s.api.CreateSubscription(ctx, models.DummySubscription{
		UserID:       userID,
		PlanID:       planID,
		StartDate:    time.Now().Format("2006-01-02"),
		CurrentPrice: target.MonthlyPrice,
		State:        models.SubscriptionActive,
		AutoRenew:    true,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("plan changed", slog.Int64("user_id", userID), slog.Int64("plan_id", planID))
	s.refresh(ctx)
	return created, nil
}

// ToggleAutoRenew flips the auto-renew flag of one subscription. The
// current record is taken from the snapshot, flipped and written back as a
// full update; the snapshot refreshes only after the backend confirmed it.
func (s *SubscriptionService) ToggleAutoRenew(ctx context.Context, id int64) (*models.Subscription, error) {
	snapshot, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := findSubscription(snapshot, id)
	if !ok {
		return nil, fmt.Errorf("%w: subscription %d not in snapshot", ErrPrecondition, id)
	}

	updated, err := s.api.UpdateSubscription(ctx, id, models.DummySubscription{
		UserID:       current.UserID,
		PlanID:       current.PlanID,
		StartDate:    current.StartDate,
		CurrentPrice: current.CurrentPrice,
		State:        current.State,
		AutoRenew:    !current.AutoRenew,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("subscription auto-renew toggled", slog.Int64("id", id), slog.Bool("auto_renew", updated.AutoRenew))
	s.refresh(ctx)
	return updated, nil
}

// Remove deletes a subscription. The snapshot is only touched after the
// backend confirmed the delete.
func (s *SubscriptionService) Remove(ctx context.Context, id int64) error {
	if err := s.api.DeleteSubscription(ctx, id); err != nil {
		return err
	}
	s.log.Info("subscription removed", slog.Int64("id", id))
	s.refresh(ctx)
	return nil
}

// refresh drops the snapshot and re-fetches it so the next read reflects
// the confirmed backend state. A failed refetch only costs a cache miss.
func (s *SubscriptionService) refresh(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, keySubscriptions); err != nil {
		s.log.Warn("failed to invalidate subscription snapshot", slog.Any("err", err))
	}
	if _, err := s.List(ctx); err != nil {
		s.log.Warn("failed to refetch subscription snapshot", slog.Any("err", err))
	}
}

func findSubscription(subs []models.Subscription, id int64) (models.Subscription, bool) {
	for _, sub := range subs {
		if sub.ID == id {
			return sub, true
		}
	}
	return models.Subscription{}, false
}
