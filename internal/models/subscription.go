package models

// Subscription binds a user to a plan over time. The UI assumes at most
// one ACTIVA subscription per user; the backend is the authority for it.
type Subscription struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"userId"`
	PlanID       int64             `json:"planId"`
	PlanName     string            `json:"planName,omitempty"`
	StartDate    string            `json:"startDate"` // ISO date, displayed as-is
	CurrentPrice float64           `json:"currentPrice"`
	State        SubscriptionState `json:"state"`
	AutoRenew    bool              `json:"autoRenew"`
}

// IsActive reports whether the subscription is in the ACTIVA state.
func (s Subscription) IsActive() bool {
	return s.State == SubscriptionActive
}

// DummySubscription carries a subscription create or update request to the backend.
type DummySubscription struct {
	UserID       int64             `json:"userId" validate:"required"`
	PlanID       int64             `json:"planId" validate:"required"`
	StartDate    string            `json:"startDate,omitempty"`
	CurrentPrice float64           `json:"currentPrice,omitempty"`
	State        SubscriptionState `json:"state,omitempty"`
	AutoRenew    bool              `json:"autoRenew"`
}
