package estimation

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProjectEstimate_AssemblesAllParts(t *testing.T) {
	e := NewEngine(nil)

	estimate := e.GenerateProjectEstimate(context.Background(), scenarioRequirements(), nil)

	assert.True(t, strings.HasPrefix(estimate.ID, "estimate-"))
	assert.False(t, estimate.CreatedAt.IsZero())
	assert.Greater(t, estimate.TotalHours, 0.0)
	assert.Greater(t, estimate.TotalCost, 0.0)
	assert.Len(t, estimate.Breakdown, 4)
	assert.Equal(t, []string{"r1", "r2"}, estimate.Requirements)
	assert.NotEmpty(t, estimate.Assumptions)
	assert.Nil(t, estimate.Risks)
	assert.GreaterOrEqual(t, estimate.Confidence, 0.1)
	assert.LessOrEqual(t, estimate.Confidence, 1.0)
}

func TestGenerateProjectEstimate_IncludeRisksMergesAssessment(t *testing.T) {
	e := NewEngine(nil)

	estimate := e.GenerateProjectEstimate(context.Background(), scenarioRequirements(), &EstimateOptions{
		IncludeRisks: true,
	})

	require.NotNil(t, estimate.Risks)
	// Real-time requirement triggers at least the performance pattern
	assert.NotEmpty(t, estimate.Risks.Factors)
}

func TestGenerateProjectEstimate_HistoricalDataOnlyWhenRequested(t *testing.T) {
	e := NewEngine(nil)
	e.AddHistoricalProject(types.ProjectData{
		ID:             "p1",
		EstimatedHours: 96, // proxy 96/8/2 = 6, near these requirements
		ActualHours:    144,
		Requirements:   []string{"realtime inventory warehouse", "billing dashboard"},
	})

	without := e.GenerateProjectEstimate(context.Background(), scenarioRequirements(), nil)
	with := e.GenerateProjectEstimate(context.Background(), scenarioRequirements(), &EstimateOptions{
		UseHistoricalData: true,
	})

	assert.Greater(t, with.TotalHours, without.TotalHours)
}

func TestGenerateProjectEstimate_CustomFactorsScaleHours(t *testing.T) {
	e := NewEngine(nil)
	heavy := 1.8

	plain := e.GenerateProjectEstimate(context.Background(), scenarioRequirements(), nil)
	weighted := e.GenerateProjectEstimate(context.Background(), scenarioRequirements(), &EstimateOptions{
		FactorOverrides: &types.FactorOverrides{Technical: &heavy},
	})

	assert.Greater(t, weighted.TotalHours, plain.TotalHours)
}

func TestAddHistoricalProject_CapsAtOneHundred(t *testing.T) {
	e := NewEngine(nil)

	for i := 0; i < 105; i++ {
		e.AddHistoricalProject(types.ProjectData{ID: fmt.Sprintf("p%d", i)})
	}

	data := e.HistoricalData()
	require.Len(t, data, 100)
	assert.Equal(t, "p5", data[0].ID)
	assert.Equal(t, "p104", data[99].ID)
}

func TestAddHistoricalProject_SharedWithAnalyzer(t *testing.T) {
	e := NewEngine(nil)

	e.AddHistoricalProject(types.ProjectData{ID: "p1"})

	assert.Len(t, e.Analyzer().HistoricalData(), 1)
}

func TestHistoricalData_DefensiveCopy(t *testing.T) {
	e := NewEngine(nil)
	e.AddHistoricalProject(types.ProjectData{ID: "p1", Name: "Original"})

	data := e.HistoricalData()
	data[0].Name = "mutated"

	assert.Equal(t, "Original", e.HistoricalData()[0].Name)
}
