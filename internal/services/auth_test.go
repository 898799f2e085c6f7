package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

type AuthAPIMock struct{ mock.Mock }

func (m *AuthAPIMock) Login(ctx context.Context, req models.DummyLogin) (*models.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
func (m *AuthAPIMock) Register(ctx context.Context, req models.DummyRegister) (*models.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

type TokenMakerMock struct{ mock.Mock }

func (m *TokenMakerMock) GenerateToken(userID int64, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func TestAuthServiceLogin(t *testing.T) {
	api := new(AuthAPIMock)
	maker := new(TokenMakerMock)
	api.On("Login", mock.Anything, models.DummyLogin{Email: "admin@example.com", Password: "secret"}).
		Return(&models.Session{UserID: 1, Email: "admin@example.com", Role: "admin"}, nil).Once()
	maker.On("GenerateToken", int64(1), "admin@example.com", "admin").
		Return("signed-token", nil).Once()

	svc := NewAuthService(api, maker, newNoopLogger())

	token, session, err := svc.Login(context.Background(), models.DummyLogin{
		Email:    "admin@example.com",
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "admin", session.Role)
	maker.AssertExpectations(t)
}

func TestAuthServiceLoginRejected(t *testing.T) {
	api := new(AuthAPIMock)
	maker := new(TokenMakerMock)
	api.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.New("bad credentials")).Once()

	svc := NewAuthService(api, maker, newNoopLogger())

	token, session, err := svc.Login(context.Background(), models.DummyLogin{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, session)
	maker.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthServiceRegister(t *testing.T) {
	api := new(AuthAPIMock)
	maker := new(TokenMakerMock)
	api.On("Register", mock.Anything, mock.Anything).
		Return(&models.Session{UserID: 2, Email: "new@example.com", Role: "user"}, nil).Once()
	maker.On("GenerateToken", int64(2), "new@example.com", "user").
		Return("signed-token", nil).Once()

	svc := NewAuthService(api, maker, newNoopLogger())

	token, session, err := svc.Register(context.Background(), models.DummyRegister{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "user", session.Role)
}
