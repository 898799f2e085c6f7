package collaborator

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// ListSubscriptions fetches every subscription.
func (c *Client) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := c.get(ctx, "/subscriptions", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// ListSubscriptionsByUser fetches the subscriptions of one user.
func (c *Client) ListSubscriptionsByUser(ctx context.Context, userID int64) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := c.get(ctx, fmt.Sprintf("/subscriptions/user/%d", userID), &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// ListSubscriptionsByState fetches subscriptions in one lifecycle state.
func (c *Client) ListSubscriptionsByState(ctx context.Context, state models.SubscriptionState) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := c.get(ctx, fmt.Sprintf("/subscriptions/state/%s", state), &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CreateSubscription asks the backend to create a subscription.
func (c *Client) CreateSubscription(ctx context.Context, req models.DummySubscription) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.post(ctx, "/subscriptions", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubscription replaces a subscription's mutable fields.
func (c *Client) UpdateSubscription(ctx context.Context, id int64, req models.DummySubscription) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.put(ctx, fmt.Sprintf("/subscriptions/%d", id), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription requests the ACTIVA -> CANCELADA transition.
func (c *Client) CancelSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.put(ctx, fmt.Sprintf("/subscriptions/%d/cancel", id), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ActivateSubscription requests the transition back to ACTIVA.
func (c *Client) ActivateSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.put(ctx, fmt.Sprintf("/subscriptions/%d/activate", id), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteSubscription removes a subscription.
func (c *Client) DeleteSubscription(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/subscriptions/%d", id))
}
