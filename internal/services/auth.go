package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// AuthAPI describes the backend session bootstrap calls.
type AuthAPI interface {
	Login(ctx context.Context, req models.DummyLogin) (*models.Session, error)
	Register(ctx context.Context, req models.DummyRegister) (*models.Session, error)
}

// TokenMaker signs portal session tokens.
type TokenMaker interface {
	GenerateToken(userID int64, email, role string) (string, error)
}

// AuthService forwards credentials to the backend and converts the
// returned session into a signed portal token. The role claim comes from
// the backend session; nothing about admin status lives in the portal.
type AuthService struct {
	api   AuthAPI
	maker TokenMaker
	log   *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(api AuthAPI, maker TokenMaker, log *slog.Logger) *AuthService {
	return &AuthService{api: api, maker: maker, log: log}
}

// Login exchanges credentials for a signed portal token plus the session.
func (s *AuthService) Login(ctx context.Context, req models.DummyLogin) (string, *models.Session, error) {
	session, err := s.api.Login(ctx, req)
	if err != nil {
		return "", nil, err
	}
	token, err := s.maker.GenerateToken(session.UserID, session.Email, session.Role)
	if err != nil {
		return "", nil, err
	}
	s.log.Info("user logged in", slog.Int64("user_id", session.UserID), slog.String("role", session.Role))
	return token, session, nil
}

// Register forwards a registration and logs the new user straight in.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) (string, *models.Session, error) {
	session, err := s.api.Register(ctx, req)
	if err != nil {
		return "", nil, err
	}
	token, err := s.maker.GenerateToken(session.UserID, session.Email, session.Role)
	if err != nil {
		return "", nil, err
	}
	s.log.Info("user registered", slog.Int64("user_id", session.UserID))
	return token, session, nil
}
