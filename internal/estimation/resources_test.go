package estimation

import (
	"context"
	"testing"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func team() types.TeamConfiguration {
	return types.TeamConfiguration{
		SeniorDevelopers: 2,
		MidDevelopers:    2,
		JuniorDevelopers: 1,
		Rates:            types.TierRates{Senior: 150, Mid: 100, Junior: 60},
	}
}

func TestGenerateResourceBasedEstimate_EmptyTeamFails(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.GenerateResourceBasedEstimate(context.Background(), scenarioRequirements(), types.TeamConfiguration{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTeam)
	assert.Contains(t, err.Error(), "at least one developer")
}

func TestGenerateResourceBasedEstimate_NegativeCountFails(t *testing.T) {
	e := NewEngine(nil)

	invalid := types.TeamConfiguration{SeniorDevelopers: 2, MidDevelopers: -1}
	_, err := e.GenerateResourceBasedEstimate(context.Background(), scenarioRequirements(), invalid, nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyTeam)
	assert.Contains(t, err.Error(), "invalid team configuration")
}

func TestGenerateResourceBasedEstimate_SeniorCarriesComplexWork(t *testing.T) {
	e := NewEngine(nil)

	estimate, err := e.GenerateResourceBasedEstimate(context.Background(), scenarioRequirements(), team(), nil)
	require.NoError(t, err)

	require.Len(t, estimate.Allocations, 3)
	byTier := make(map[string]types.TierAllocation)
	for _, a := range estimate.Allocations {
		byTier[a.Tier] = a
	}

	// senior = 40% + half of 40%; junior = half of 20%
	assert.InDelta(t, estimate.TotalHours*0.6, byTier["senior"].Hours, 0.01)
	assert.InDelta(t, estimate.TotalHours*0.3, byTier["mid"].Hours, 0.01)
	assert.InDelta(t, estimate.TotalHours*0.1, byTier["junior"].Hours, 0.01)
	assert.Greater(t, byTier["senior"].Hours, byTier["junior"].Hours)
}

func TestGenerateResourceBasedEstimate_AllocationsSumToTotal(t *testing.T) {
	e := NewEngine(nil)

	estimate, err := e.GenerateResourceBasedEstimate(context.Background(), scenarioRequirements(), team(), nil)
	require.NoError(t, err)

	var sum float64
	for _, a := range estimate.Allocations {
		sum += a.Hours
	}
	assert.InDelta(t, estimate.TotalHours, sum, 0.1)
}

func TestGenerateResourceBasedEstimate_CostScaledByOverheadAndMargin(t *testing.T) {
	e := NewEngine(nil)

	estimate, err := e.GenerateResourceBasedEstimate(context.Background(), scenarioRequirements(), team(), nil)
	require.NoError(t, err)

	var subtotal float64
	for _, a := range estimate.Allocations {
		assert.Equal(t, round2(a.Hours*a.Rate), a.Cost)
		subtotal += a.Cost
	}
	subtotal = round2(subtotal)
	expected := round2(round2(subtotal*1.3) * 1.2)
	assert.Equal(t, expected, estimate.TotalCost)
}

func TestGenerateResourceBasedEstimate_SingleJuniorIsValid(t *testing.T) {
	e := NewEngine(nil)

	estimate, err := e.GenerateResourceBasedEstimate(context.Background(), scenarioRequirements(), types.TeamConfiguration{
		JuniorDevelopers: 1,
		Rates:            types.TierRates{Junior: 50},
	}, nil)

	require.NoError(t, err)
	assert.Greater(t, estimate.TotalHours, 0.0)
}
