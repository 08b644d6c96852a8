package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RateConfiguration is the process-wide billing configuration read by
// every cost calculation. Overhead and ProfitMargin are fractions
// (0.3 means 30%).
type RateConfiguration struct {
	HourlyRate   float64 `json:"hourly_rate" validate:"gt=0"`
	Currency     string  `json:"currency" validate:"required,len=3"`
	Overhead     float64 `json:"overhead" validate:"gte=0"`
	ProfitMargin float64 `json:"profit_margin" validate:"gte=0"`
}

// DefaultRateConfiguration returns the rate configuration used when the
// caller supplies none.
func DefaultRateConfiguration() RateConfiguration {
	return RateConfiguration{
		HourlyRate:   100,
		Currency:     "USD",
		Overhead:     0.3,
		ProfitMargin: 0.2,
	}
}

// Validate validates the RateConfiguration using the validator.
func (r *RateConfiguration) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Breakdown category names. Every time estimate allocates hours to
// exactly these four phases.
const (
	CategoryDevelopment   = "Development"
	CategoryTesting       = "Testing"
	CategoryDocumentation = "Documentation"
	CategoryDeployment    = "Deployment"
)

// EstimateBreakdown allocates a share of total hours to one phase.
type EstimateBreakdown struct {
	Category     string   `json:"category"`
	Hours        float64  `json:"hours"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
}

// TimeEstimate is the hour-level output of the estimation engine,
// before any cost calculation.
type TimeEstimate struct {
	TotalHours       float64             `json:"total_hours"`
	Breakdown        []EstimateBreakdown `json:"breakdown"`
	Confidence       float64             `json:"confidence"`
	AdjustmentFactor float64             `json:"adjustment_factor"`
}

// BufferedTimeEstimate wraps a TimeEstimate with an explicit
// contingency buffer. Negative buffers are allowed and reduce the
// effective total.
type BufferedTimeEstimate struct {
	TimeEstimate
	BufferPercentage float64 `json:"buffer_percentage"`
	BufferHours      float64 `json:"buffer_hours"`
	TotalWithBuffer  float64 `json:"total_with_buffer"`
}

// CostLine is the cost of a single breakdown category.
type CostLine struct {
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
	Cost     float64 `json:"cost"`
}

// CostBreakdown is the full monetary decomposition of an estimate.
// Every field is rounded to 2 decimal places at the step it is
// produced, so rounding error accumulates identically on every path.
type CostBreakdown struct {
	Lines    []CostLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
	Overhead float64    `json:"overhead"`
	Profit   float64    `json:"profit"`
	Total    float64    `json:"total"`
	Currency string     `json:"currency"`
}

// ProjectEstimate is the aggregate result of a full estimation run.
// Variants (scenarios, resource allocations) are derived as new
// objects; a ProjectEstimate is never mutated in place.
type ProjectEstimate struct {
	ID           string              `json:"id"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	TotalHours   float64             `json:"total_hours"`
	TotalCost    float64             `json:"total_cost"`
	Currency     string              `json:"currency"`
	Breakdown    []EstimateBreakdown `json:"breakdown"`
	Complexity   ComplexityScore     `json:"complexity"`
	Risks        *RiskAssessment     `json:"risks,omitempty"`
	Assumptions  []string            `json:"assumptions,omitempty"`
	Confidence   float64             `json:"confidence"`
	Requirements []string            `json:"requirements"`
}

// ScenarioName identifies one of the fixed projection profiles.
type ScenarioName string

// Scenario constants
const (
	ScenarioOptimistic  ScenarioName = "optimistic"
	ScenarioRealistic   ScenarioName = "realistic"
	ScenarioPessimistic ScenarioName = "pessimistic"
)

// ScenarioEstimate is a ProjectEstimate derived under a named
// multiplier profile.
type ScenarioEstimate struct {
	Scenario   ScenarioName    `json:"scenario"`
	Multiplier float64         `json:"multiplier"`
	Estimate   ProjectEstimate `json:"estimate"`
}

// CalibrationReport compares past estimates against actuals.
// Positive bias means past estimates ran above the actual hours.
type CalibrationReport struct {
	Accuracy        float64  `json:"accuracy"`
	Bias            float64  `json:"bias"`
	SampleSize      int      `json:"sample_size"`
	Recommendations []string `json:"recommendations"`
}

// EstimateValidation is the result of sanity-checking a finished
// estimate against its requirements.
type EstimateValidation struct {
	Valid       bool     `json:"valid"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}
