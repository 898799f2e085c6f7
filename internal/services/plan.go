package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// PlanAPI describes the backend calls the plan service uses.
type PlanAPI interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	ListActivePlans(ctx context.Context) ([]models.Plan, error)
	CreatePlan(ctx context.Context, req models.DummyPlan) (*models.Plan, error)
	UpdatePlan(ctx context.Context, id int64, req models.DummyPlan) (*models.Plan, error)
	DeletePlan(ctx context.Context, id int64) error
}

// PlanService implements the plan snapshot and the admin CRUD around it.
type PlanService struct {
	api   PlanAPI
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewPlanService creates a PlanService.
func NewPlanService(api PlanAPI, cache Cache, ttl time.Duration, log *slog.Logger) *PlanService {
	return &PlanService{api: api, cache: cache, ttl: ttl, log: log}
}

// List returns every plan, serving the cached snapshot when fresh.
func (s *PlanService) List(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	found, err := s.cache.Get(ctx, keyPlans, &plans)
	if err != nil {
		s.log.Warn("failed to read plans from cache", slog.Any("err", err))
	}
	if found {
		return plans, nil
	}
	plans, err = s.api.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, keyPlans, plans, s.ttl); err != nil {
		s.log.Warn("failed to cache plans", slog.Any("err", err))
	}
	return plans, nil
}

// ListActive returns only the plans currently offered, always fresh (the
// self-service plan picker must not see stale tiers).
func (s *PlanService) ListActive(ctx context.Context) ([]models.Plan, error) {
	return s.api.ListActivePlans(ctx)
}

// Create asks the backend to create a plan.
func (s *PlanService) Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	plan, err := s.api.CreatePlan(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("plan created", slog.Int64("id", plan.ID), slog.String("name", plan.Name))
	s.refresh(ctx)
	return plan, nil
}

// Update replaces a plan's mutable fields.
func (s *PlanService) Update(ctx context.Context, id int64, req models.DummyPlan) (*models.Plan, error) {
	plan, err := s.api.UpdatePlan(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("plan updated", slog.Int64("id", id))
	s.refresh(ctx)
	return plan, nil
}

// Remove deletes a plan.
func (s *PlanService) Remove(ctx context.Context, id int64) error {
	if err := s.api.DeletePlan(ctx, id); err != nil {
		return err
	}
	s.log.Info("plan removed", slog.Int64("id", id))
	s.refresh(ctx)
	return nil
}

func (s *PlanService) refresh(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, keyPlans); err != nil {
		s.log.Warn("failed to invalidate plan snapshot", slog.Any("err", err))
	}
	if _, err := s.List(ctx); err != nil {
		s.log.Warn("failed to refetch plan snapshot", slog.Any("err", err))
	}
}
