package models

// Plan is a priced service tier with capacity limits.
type Plan struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	PlanType        PlanType `json:"planType"`
	MonthlyPrice    float64  `json:"monthlyPrice"`
	MaxUsers        int      `json:"maxUsers"`
	StorageGb       int      `json:"storageGb"`
	PrioritySupport bool     `json:"prioritySupport"`
	Active          bool     `json:"active"`
}

// DummyPlan carries a plan create/update request before validation.
type DummyPlan struct {
	Name            string  `json:"name" validate:"required"`
	PlanType        string  `json:"planType" validate:"required,oneof=BASIC PREMIUM ENTERPRISE"`
	MonthlyPrice    float64 `json:"monthlyPrice" validate:"gte=0"`
	MaxUsers        int     `json:"maxUsers" validate:"gte=0"`
	StorageGb       int     `json:"storageGb" validate:"gte=0"`
	PrioritySupport bool    `json:"prioritySupport"`
	Active          bool    `json:"active"`
}
