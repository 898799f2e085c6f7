// Package models contains the domain records mirrored from the billing
// backend, together with the closed state vocabularies and their display
// categories used by every view of the portal.
package models

// Category is the render hint a state maps to. Views pick a visual
// treatment from it, nothing else.
type Category string

const (
	// CategoryPositive marks a healthy state (paid invoice, active subscription).
	CategoryPositive Category = "positive"
	// CategoryWarning marks a state awaiting action (pending payment).
	CategoryWarning Category = "warning"
	// CategoryNegative marks a failed or overdue state.
	CategoryNegative Category = "negative"
	// CategoryNeutral is the fallback for terminal and unknown states.
	CategoryNeutral Category = "neutral"
)

// SubscriptionState is the closed lifecycle vocabulary for subscriptions.
// Values are the backend's wire values; narrower per-view sets are filters
// over this superset, never separate types.
type SubscriptionState string

const (
	SubscriptionActive     SubscriptionState = "ACTIVA"
	SubscriptionCancelled  SubscriptionState = "CANCELADA"
	SubscriptionDelinquent SubscriptionState = "MOROSA"
	SubscriptionPending    SubscriptionState = "PENDIENTE"
	SubscriptionOverdue    SubscriptionState = "VENCIDA"
	SubscriptionSuspended  SubscriptionState = "SUSPENDIDA"
	SubscriptionExpired    SubscriptionState = "EXPIRADA"
)

// SubscriptionStates lists every member of the closed enum.
var SubscriptionStates = []SubscriptionState{
	SubscriptionActive,
	SubscriptionCancelled,
	SubscriptionDelinquent,
	SubscriptionPending,
	SubscriptionOverdue,
	SubscriptionSuspended,
	SubscriptionExpired,
}

// Valid reports whether s is a member of the closed enum.
func (s SubscriptionState) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionCancelled, SubscriptionDelinquent,
		SubscriptionPending, SubscriptionOverdue, SubscriptionSuspended,
		SubscriptionExpired:
		return true
	}
	return false
}

// Category maps the state to its render hint. Total over the enum,
// unknown values fall back to neutral.
func (s SubscriptionState) Category() Category {
	switch s {
	case SubscriptionActive:
		return CategoryPositive
	case SubscriptionPending:
		return CategoryWarning
	case SubscriptionDelinquent, SubscriptionOverdue, SubscriptionSuspended, SubscriptionExpired:
		return CategoryNegative
	case SubscriptionCancelled:
		return CategoryNeutral
	}
	return CategoryNeutral
}

// InvoiceState is the closed lifecycle vocabulary for invoices.
type InvoiceState string

const (
	InvoicePending   InvoiceState = "PENDIENTE"
	InvoicePaid      InvoiceState = "PAGADA"
	InvoiceOverdue   InvoiceState = "VENCIDA"
	InvoiceCancelled InvoiceState = "CANCELADA"
	InvoiceRefunded  InvoiceState = "REEMBOLSADA"
)

// InvoiceStates lists every member of the closed enum.
var InvoiceStates = []InvoiceState{
	InvoicePending,
	InvoicePaid,
	InvoiceOverdue,
	InvoiceCancelled,
	InvoiceRefunded,
}

// Valid reports whether s is a member of the closed enum.
func (s InvoiceState) Valid() bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue, InvoiceCancelled, InvoiceRefunded:
		return true
	}
	return false
}

// Category maps the state to its render hint. Total over the enum,
// unknown values fall back to neutral.
func (s InvoiceState) Category() Category {
	switch s {
	case InvoicePaid:
		return CategoryPositive
	case InvoicePending:
		return CategoryWarning
	case InvoiceOverdue:
		return CategoryNegative
	case InvoiceCancelled, InvoiceRefunded:
		return CategoryNeutral
	}
	return CategoryNeutral
}

// PlanType is the closed set of service tiers.
type PlanType string

const (
	PlanBasic      PlanType = "BASIC"
	PlanPremium    PlanType = "PREMIUM"
	PlanEnterprise PlanType = "ENTERPRISE"
)

// Valid reports whether t is a member of the closed enum.
func (t PlanType) Valid() bool {
	switch t {
	case PlanBasic, PlanPremium, PlanEnterprise:
		return true
	}
	return false
}

// AuditOperation is the kind of change an audit record describes.
type AuditOperation string

const (
	AuditAdd    AuditOperation = "ADD"
	AuditModify AuditOperation = "MOD"
	AuditDelete AuditOperation = "DELETE"
)
