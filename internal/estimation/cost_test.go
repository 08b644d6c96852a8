package estimation

import (
	"testing"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCostBreakdown_ReferenceFigures(t *testing.T) {
	e := NewEngine(nil)
	require.NoError(t, e.SetRateConfiguration(types.RateConfiguration{
		HourlyRate:   100,
		Currency:     "USD",
		Overhead:     0.3,
		ProfitMargin: 0.2,
	}))

	cost := e.CalculateCostBreakdown(types.TimeEstimate{
		TotalHours: 100,
		Breakdown: []types.EstimateBreakdown{
			{Category: types.CategoryDevelopment, Hours: 60},
			{Category: types.CategoryTesting, Hours: 25},
			{Category: types.CategoryDocumentation, Hours: 15},
		},
	})

	assert.Equal(t, 10000.0, cost.Subtotal)
	assert.Equal(t, 3000.0, cost.Overhead)
	assert.Equal(t, 2600.0, cost.Profit)
	assert.Equal(t, 15600.0, cost.Total)
	assert.Equal(t, "USD", cost.Currency)
}

func TestCalculateCostBreakdown_LinesPerCategory(t *testing.T) {
	e := NewEngine(nil)

	cost := e.CalculateCostBreakdown(types.TimeEstimate{
		Breakdown: []types.EstimateBreakdown{
			{Category: types.CategoryDevelopment, Hours: 24},
			{Category: types.CategoryTesting, Hours: 10},
		},
	})

	require.Len(t, cost.Lines, 2)
	assert.Equal(t, types.CategoryDevelopment, cost.Lines[0].Category)
	assert.Equal(t, 2400.0, cost.Lines[0].Cost)
	assert.Equal(t, 1000.0, cost.Lines[1].Cost)
}

func TestCalculateCostBreakdown_RoundsAtEveryStep(t *testing.T) {
	e := NewEngine(nil)
	require.NoError(t, e.SetRateConfiguration(types.RateConfiguration{
		HourlyRate:   99.99,
		Currency:     "USD",
		Overhead:     0.333,
		ProfitMargin: 0.177,
	}))

	cost := e.CalculateCostBreakdown(types.TimeEstimate{
		Breakdown: []types.EstimateBreakdown{
			{Category: types.CategoryDevelopment, Hours: 10.33},
			{Category: types.CategoryTesting, Hours: 4.17},
		},
	})

	// Rounding happens per line, then per aggregate, in a fixed order
	assert.Equal(t, round2(10.33*99.99), cost.Lines[0].Cost)
	assert.Equal(t, round2(4.17*99.99), cost.Lines[1].Cost)
	assert.Equal(t, round2(cost.Lines[0].Cost+cost.Lines[1].Cost), cost.Subtotal)
	assert.Equal(t, round2(cost.Subtotal*0.333), cost.Overhead)
	assert.Equal(t, round2((cost.Subtotal+cost.Overhead)*0.177), cost.Profit)
	assert.Equal(t, round2(cost.Subtotal+cost.Overhead+cost.Profit), cost.Total)
}

func TestCalculateTotalCost_MatchesBreakdownPath(t *testing.T) {
	e := NewEngine(nil)

	total := e.CalculateTotalCost(100)

	// 10000 subtotal, 3000 overhead, 2600 profit at default rates
	assert.Equal(t, 15600.0, total)
}

func TestSetRateConfiguration_RejectsInvalid(t *testing.T) {
	e := NewEngine(nil)

	err := e.SetRateConfiguration(types.RateConfiguration{
		HourlyRate: 0, // must be positive
		Currency:   "USD",
	})

	assert.Error(t, err)
	// Configuration unchanged after a rejected update
	assert.Equal(t, types.DefaultRateConfiguration(), e.RateConfiguration())
}
