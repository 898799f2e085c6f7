package collaborator

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// AuditSubscriptions fetches the change history of all subscriptions.
func (c *Client) AuditSubscriptions(ctx context.Context) ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	if err := c.get(ctx, "/audit/subscriptions", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AuditUsers fetches the change history of all users.
func (c *Client) AuditUsers(ctx context.Context) ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	if err := c.get(ctx, "/audit/users", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AuditEntity fetches the revision trail of one record.
func (c *Client) AuditEntity(ctx context.Context, entity string, id int64) ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	if err := c.get(ctx, fmt.Sprintf("/audit/%s/%d", entity, id), &records); err != nil {
		return nil, err
	}
	return records, nil
}
