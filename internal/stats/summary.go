package stats

import "github.com/magabrotheeeer/billing-portal/internal/models"

// Summary is the derived dashboard block the admin panel renders. All
// fields are computed from already-fetched collections; nothing here goes
// back to the backend.
type Summary struct {
	TotalUsers          int                `json:"total_users"`
	ActiveUsers         int                `json:"active_users"`
	TotalPlans          int                `json:"total_plans"`
	ActivePlans         int                `json:"active_plans"`
	TotalSubscriptions  int                `json:"total_subscriptions"`
	ActiveSubscriptions int                `json:"active_subscriptions"`
	TotalInvoices       int                `json:"total_invoices"`
	PendingInvoices     int                `json:"pending_invoices"`
	TotalRevenue        float64            `json:"total_revenue"`
	PendingRevenue      float64            `json:"pending_revenue"`
	PaidRevenue         float64            `json:"paid_revenue"`
	RevenueByCountry    map[string]float64 `json:"revenue_by_country"`
}

// BuildSummary derives the dashboard numbers from the four collections.
func BuildSummary(users []models.User, plans []models.Plan, subs []models.Subscription, invoices []models.Invoice) Summary {
	return Summary{
		TotalUsers:          len(users),
		ActiveUsers:         Count(users, func(u models.User) bool { return u.Active }),
		TotalPlans:          len(plans),
		ActivePlans:         Count(plans, func(p models.Plan) bool { return p.Active }),
		TotalSubscriptions:  len(subs),
		ActiveSubscriptions: ActiveSubscriptions(subs),
		TotalInvoices:       len(invoices),
		PendingInvoices: Count(invoices, func(inv models.Invoice) bool {
			return inv.State == models.InvoicePending
		}),
		TotalRevenue:     TotalRevenue(invoices),
		PendingRevenue:   RevenueByState(invoices, models.InvoicePending),
		PaidRevenue:      RevenueByState(invoices, models.InvoicePaid),
		RevenueByCountry: RevenueByCountry(invoices),
	}
}
