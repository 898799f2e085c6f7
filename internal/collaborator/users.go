package collaborator

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// ListUsers fetches every user.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces a user's mutable fields and returns the stored record.
func (c *Client) UpdateUser(ctx context.Context, id int64, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}
