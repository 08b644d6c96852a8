package types

import (
	"github.com/go-playground/validator/v10"
)

// TierRates holds the hourly billing rate per developer tier.
type TierRates struct {
	Senior float64 `json:"senior" validate:"gte=0"`
	Mid    float64 `json:"mid" validate:"gte=0"`
	Junior float64 `json:"junior" validate:"gte=0"`
}

// TeamConfiguration describes the team an estimate is allocated
// against. At least one developer across the three tiers is required.
type TeamConfiguration struct {
	SeniorDevelopers int       `json:"senior_developers" validate:"gte=0"`
	MidDevelopers    int       `json:"mid_developers" validate:"gte=0"`
	JuniorDevelopers int       `json:"junior_developers" validate:"gte=0"`
	Rates            TierRates `json:"rates"`
}

// Validate validates the TeamConfiguration using the validator.
func (t *TeamConfiguration) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// TotalMembers returns the developer headcount across all tiers.
func (t *TeamConfiguration) TotalMembers() int {
	return t.SeniorDevelopers + t.MidDevelopers + t.JuniorDevelopers
}

// TierAllocation is the hour and cost allocation for one developer tier.
type TierAllocation struct {
	Tier  string  `json:"tier"`
	Hours float64 `json:"hours"`
	Rate  float64 `json:"rate"`
	Cost  float64 `json:"cost"`
}

// ResourceEstimate allocates an estimate's hours across developer
// tiers based on work complexity buckets.
type ResourceEstimate struct {
	TotalHours  float64          `json:"total_hours"`
	TotalCost   float64          `json:"total_cost"`
	Currency    string           `json:"currency"`
	Allocations []TierAllocation `json:"allocations"`
	Confidence  float64          `json:"confidence"`
}
