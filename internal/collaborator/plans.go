package collaborator

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// ListPlans fetches every plan.
func (c *Client) ListPlans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := c.get(ctx, "/plans", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// ListActivePlans fetches only the plans currently offered.
func (c *Client) ListActivePlans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := c.get(ctx, "/plans/active", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CreatePlan asks the backend to create a plan and returns the stored record.
func (c *Client) CreatePlan(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	var plan models.Plan
	if err := c.post(ctx, "/plans", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan replaces a plan's mutable fields and returns the stored record.
func (c *Client) UpdatePlan(ctx context.Context, id int64, req models.DummyPlan) (*models.Plan, error) {
	var plan models.Plan
	if err := c.put(ctx, fmt.Sprintf("/plans/%d", id), req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes a plan.
func (c *Client) DeletePlan(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/plans/%d", id))
}
