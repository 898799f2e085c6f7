package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

type UserAPIMock struct{ mock.Mock }

func (m *UserAPIMock) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}
func (m *UserAPIMock) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserAPIMock) UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserAPIMock) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestUserServiceToggleActive(t *testing.T) {
	api := new(UserAPIMock)
	api.On("GetUser", mock.Anything, int64(10)).
		Return(&models.User{ID: 10, Active: true}, nil).Once()
	api.On("UpdateUser", mock.Anything, int64(10), mock.MatchedBy(func(u models.User) bool {
		return !u.Active
	})).Return(&models.User{ID: 10, Active: false}, nil).Once()
	api.On("ListUsers", mock.Anything).Return([]models.User{}, nil)

	svc := NewUserService(api, passthroughCache(), time.Minute, newNoopLogger())

	got, err := svc.ToggleActive(context.Background(), 10)

	assert.NoError(t, err)
	assert.False(t, got.Active)
	api.AssertExpectations(t)
}

func TestUserServiceToggleActiveRejectedUpdate(t *testing.T) {
	api := new(UserAPIMock)
	api.On("GetUser", mock.Anything, int64(10)).
		Return(&models.User{ID: 10, Active: false}, nil).Once()
	api.On("UpdateUser", mock.Anything, int64(10), mock.Anything).
		Return(nil, errors.New("backend says no")).Once()

	cache := passthroughCache()
	svc := NewUserService(api, cache, time.Minute, newNoopLogger())

	_, err := svc.ToggleActive(context.Background(), 10)

	assert.Error(t, err)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestUserServiceRemove(t *testing.T) {
	api := new(UserAPIMock)
	api.On("DeleteUser", mock.Anything, int64(10)).Return(nil).Once()
	api.On("ListUsers", mock.Anything).Return([]models.User{}, nil)

	cache := passthroughCache()
	svc := NewUserService(api, cache, time.Minute, newNoopLogger())

	assert.NoError(t, svc.Remove(context.Background(), 10))
	cache.AssertCalled(t, "Invalidate", mock.Anything, keyUsers)
}
