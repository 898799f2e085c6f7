package collaborator

import (
	"context"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// Login forwards credentials to the backend and returns the session the
// backend answered with. The role in the session is the only admin signal
// the portal trusts.
func (c *Client) Login(ctx context.Context, req models.DummyLogin) (*models.Session, error) {
	var session models.Session
	if err := c.post(ctx, "/auth/login", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Register forwards a registration request to the backend.
func (c *Client) Register(ctx context.Context, req models.DummyRegister) (*models.Session, error) {
	var session models.Session
	if err := c.post(ctx, "/auth/register", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
