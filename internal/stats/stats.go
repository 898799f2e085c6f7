// Package stats contains the pure aggregation functions the portal derives
// its summary numbers from. Every function is deterministic over its input,
// never mutates source records and returns zero values for empty lists.
package stats

import (
	"strings"

	"github.com/magabrotheeeer/billing-portal/internal/models"
)

// Count returns the number of elements matching pred.
func Count[T any](items []T, pred func(T) bool) int {
	var n int
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Sum adds value(item) over all elements. Empty input sums to 0.
func Sum[T any](items []T, value func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += value(item)
	}
	return total
}

// GroupSum buckets elements by key and sums value per bucket.
// Empty input yields an empty map, never nil entries.
func GroupSum[T any, K comparable](items []T, key func(T) K, value func(T) float64) map[K]float64 {
	groups := make(map[K]float64)
	for _, item := range items {
		groups[key(item)] += value(item)
	}
	return groups
}

// ActiveSubscriptions counts subscriptions in the ACTIVA state.
func ActiveSubscriptions(subs []models.Subscription) int {
	return Count(subs, models.Subscription.IsActive)
}

// TotalRevenue sums invoice totals over the whole list.
func TotalRevenue(invoices []models.Invoice) float64 {
	return Sum(invoices, func(inv models.Invoice) float64 { return inv.Total })
}

// RevenueByState sums invoice totals for invoices in the given state only.
func RevenueByState(invoices []models.Invoice, state models.InvoiceState) float64 {
	var total float64
	for _, inv := range invoices {
		if inv.State == state {
			total += inv.Total
		}
	}
	return total
}

// fallbackCountry is the bucket for invoices whose country cannot be
// determined, matching what the views have always rendered.
const fallbackCountry = "Otros"

// CountryOf resolves the grouping country for an invoice. The first-class
// Country field wins; older backend records only carry it embedded in the
// concept ("Suscripción <plan> - <país> - <periodo>"), so the second
// " - " segment is used as a fallback.
func CountryOf(inv models.Invoice) string {
	if inv.Country != "" {
		return inv.Country
	}
	parts := strings.Split(inv.Concept, " - ")
	if len(parts) >= 2 && strings.TrimSpace(parts[1]) != "" {
		return strings.TrimSpace(parts[1])
	}
	return fallbackCountry
}

// RevenueByCountry groups invoice totals by CountryOf.
func RevenueByCountry(invoices []models.Invoice) map[string]float64 {
	return GroupSum(invoices, CountryOf, func(inv models.Invoice) float64 { return inv.Total })
}
