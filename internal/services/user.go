package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// UserAPI describes the backend calls the user service uses.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserService implements the user snapshot and the admin transitions on it.
type UserService struct {
	api   UserAPI
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(api UserAPI, cache Cache, ttl time.Duration, log *slog.Logger) *UserService {
	return &UserService{api: api, cache: cache, ttl: ttl, log: log}
}

// List returns the full user snapshot, serving the cached copy when fresh.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	found, err := s.cache.Get(ctx, keyUsers, &users)
	if err != nil {
		s.log.Warn("failed to read users from cache", slog.Any("err", err))
	}
	if found {
		return users, nil
	}
	users, err = s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, keyUsers, users, s.ttl); err != nil {
		s.log.Warn("failed to cache users", slog.Any("err", err))
	}
	return users, nil
}

// ToggleActive flips the active flag of one user. There is no
// precondition; the current value is read fresh from the backend, flipped
// and written back, and the snapshot refreshed only after the backend
// confirmed the update.
func (s *UserService) ToggleActive(ctx context.Context, id int64) (*models.User, error) {
	current, err := s.api.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	toggled := *current
	toggled.Active = !current.Active

	updated, err := s.api.UpdateUser(ctx, id, toggled)
	if err != nil {
		return nil, err
	}
	s.log.Info("user active flag toggled", slog.Int64("id", id), slog.Bool("active", updated.Active))
	s.refresh(ctx)
	return updated, nil
}

// Remove deletes a user. The snapshot is only touched after the backend
// confirmed the delete.
func (s *UserService) Remove(ctx context.Context, id int64) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("user removed", slog.Int64("id", id))
	s.refresh(ctx)
	return nil
}

func (s *UserService) refresh(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, keyUsers); err != nil {
		s.log.Warn("failed to invalidate user snapshot", slog.Any("err", err))
	}
	if _, err := s.List(ctx); err != nil {
		s.log.Warn("failed to refetch user snapshot", slog.Any("err", err))
	}
}
