package estimation

import (
	"testing"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/stretchr/testify/assert"
)

func fullBreakdown(total float64) []types.EstimateBreakdown {
	return []types.EstimateBreakdown{
		{Category: types.CategoryDevelopment, Hours: total * 0.6},
		{Category: types.CategoryTesting, Hours: total * 0.25},
		{Category: types.CategoryDocumentation, Hours: total * 0.1},
		{Category: types.CategoryDeployment, Hours: total * 0.05},
	}
}

func reqs(n int) []types.Requirement {
	out := make([]types.Requirement, n)
	for i := range out {
		out[i] = types.Requirement{
			ID:          "r",
			Type:        types.RequirementFunctional,
			Priority:    types.PriorityMedium,
			Description: "Store incoming orders in the database",
		}
	}
	return out
}

func TestValidateEstimate_WellFormedPasses(t *testing.T) {
	e := NewEngine(nil)

	result := e.ValidateEstimate(types.ProjectEstimate{
		TotalHours: 80,
		Breakdown:  fullBreakdown(80),
		Confidence: 0.8,
	}, reqs(4))

	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}

func TestValidateEstimate_TooFewHoursPerRequirement(t *testing.T) {
	e := NewEngine(nil)

	result := e.ValidateEstimate(types.ProjectEstimate{
		TotalHours: 10,
		Breakdown:  fullBreakdown(10),
		Confidence: 0.8,
	}, reqs(10))

	assert.False(t, result.Valid)
	assert.Contains(t, result.Warnings[0], "suspiciously low")
}

func TestValidateEstimate_TooManyHoursPerRequirement(t *testing.T) {
	e := NewEngine(nil)

	result := e.ValidateEstimate(types.ProjectEstimate{
		TotalHours: 500,
		Breakdown:  fullBreakdown(500),
		Confidence: 0.8,
	}, reqs(2))

	assert.False(t, result.Valid)
	assert.Contains(t, result.Warnings[0], "suspiciously high")
}

func TestValidateEstimate_LowConfidenceWarns(t *testing.T) {
	e := NewEngine(nil)

	result := e.ValidateEstimate(types.ProjectEstimate{
		TotalHours: 80,
		Breakdown:  fullBreakdown(80),
		Confidence: 0.3,
	}, reqs(4))

	assert.False(t, result.Valid)
	assert.Contains(t, result.Warnings[0], "below 0.5")
}

func TestValidateEstimate_MissingMandatoryCategory(t *testing.T) {
	e := NewEngine(nil)

	result := e.ValidateEstimate(types.ProjectEstimate{
		TotalHours: 80,
		Breakdown: []types.EstimateBreakdown{
			{Category: types.CategoryDevelopment, Hours: 60},
			{Category: types.CategoryDocumentation, Hours: 20},
		},
		Confidence: 0.8,
	}, reqs(4))

	assert.False(t, result.Valid)
	assert.Contains(t, result.Warnings[0], types.CategoryTesting)
}

func TestValidateEstimate_SuggestsRiskAssessment(t *testing.T) {
	e := NewEngine(nil)

	result := e.ValidateEstimate(types.ProjectEstimate{
		TotalHours: 80,
		Breakdown:  fullBreakdown(80),
		Confidence: 0.8,
	}, reqs(4))

	assert.Contains(t, result.Suggestions, "Run a risk assessment to complement this estimate.")
}
