package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

type AuditAPIMock struct{ mock.Mock }

func (m *AuditAPIMock) AuditSubscriptions(ctx context.Context) ([]models.AuditRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditRecord), args.Error(1)
}
func (m *AuditAPIMock) AuditUsers(ctx context.Context) ([]models.AuditRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditRecord), args.Error(1)
}
func (m *AuditAPIMock) AuditEntity(ctx context.Context, entity string, id int64) ([]models.AuditRecord, error) {
	args := m.Called(ctx, entity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditRecord), args.Error(1)
}

func TestAuditServiceHistory(t *testing.T) {
	api := new(AuditAPIMock)
	api.On("AuditSubscriptions", mock.Anything).
		Return([]models.AuditRecord{{EntityID: 1, Operation: models.AuditModify}}, nil).Once()
	api.On("AuditUsers", mock.Anything).
		Return([]models.AuditRecord{}, nil).Once()

	svc := NewAuditService(api, newNoopLogger())

	records, err := svc.History(context.Background(), "subscriptions")
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.History(context.Background(), "users")
	assert.NoError(t, err)

	_, err = svc.History(context.Background(), "plans")
	assert.ErrorIs(t, err, ErrPrecondition)
	api.AssertExpectations(t)
}

func TestAuditServiceRecord(t *testing.T) {
	api := new(AuditAPIMock)
	api.On("AuditEntity", mock.Anything, "users", int64(10)).
		Return([]models.AuditRecord{{EntityID: 10, Operation: models.AuditDelete}}, nil).Once()

	svc := NewAuditService(api, newNoopLogger())

	records, err := svc.Record(context.Background(), "users", 10)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.Record(context.Background(), "invoices", 10)
	assert.ErrorIs(t, err, ErrPrecondition)
	api.AssertNotCalled(t, "AuditEntity", mock.Anything, "invoices", mock.Anything)
}
