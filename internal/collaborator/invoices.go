package collaborator

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// ListInvoices fetches every invoice.
func (c *Client) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.get(ctx, "/invoices", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListInvoicesByUser fetches the invoices of one user.
func (c *Client) ListInvoicesByUser(ctx context.Context, userID int64) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.get(ctx, fmt.Sprintf("/invoices/user/%d", userID), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListInvoicesByState fetches invoices in one lifecycle state.
func (c *Client) ListInvoicesByState(ctx context.Context, state models.InvoiceState) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.get(ctx, fmt.Sprintf("/invoices/state/%s", state), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListOverdueInvoices fetches invoices the backend considers overdue.
func (c *Client) ListOverdueInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.get(ctx, "/invoices/overdue", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// FilterInvoicesByDate fetches invoices issued inside [from, to].
func (c *Client) FilterInvoicesByDate(ctx context.Context, from, to string) ([]models.Invoice, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	var invoices []models.Invoice
	if err := c.get(ctx, "/invoices/filter/date?"+q.Encode(), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// FilterInvoicesByAmount fetches invoices with total inside [min, max].
func (c *Client) FilterInvoicesByAmount(ctx context.Context, min, max float64) ([]models.Invoice, error) {
	q := url.Values{}
	q.Set("min", strconv.FormatFloat(min, 'f', -1, 64))
	q.Set("max", strconv.FormatFloat(max, 'f', -1, 64))
	var invoices []models.Invoice
	if err := c.get(ctx, "/invoices/filter/amount?"+q.Encode(), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// PayInvoice requests the PENDIENTE -> PAGADA transition.
func (c *Client) PayInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.put(ctx, fmt.Sprintf("/invoices/%d/pay", id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ChangeInvoiceState requests an admin transition to an arbitrary enum value.
func (c *Client) ChangeInvoiceState(ctx context.Context, id int64, state models.InvoiceState) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.put(ctx, fmt.Sprintf("/invoices/%d/state/%s", id, state), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// TaxTable fetches the VAT percentage per country.
func (c *Client) TaxTable(ctx context.Context) (map[string]float64, error) {
	taxes := make(map[string]float64)
	if err := c.get(ctx, "/invoices/taxes", &taxes); err != nil {
		return nil, err
	}
	return taxes, nil
}

// DeleteInvoice removes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/invoices/%d", id))
}
