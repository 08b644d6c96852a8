package estimation

import (
	"math"
	"testing"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(technical, business, integration float64) types.ComplexityScore {
	return types.ComplexityScore{
		Overall:     (technical + business + integration) / 3,
		Technical:   technical,
		Business:    business,
		Integration: integration,
	}
}

func TestGenerateTimeEstimate_BaseHoursFormula(t *testing.T) {
	e := NewEngine(nil)

	estimate := e.GenerateTimeEstimate(score(5, 5, 5), nil)

	// (5*0.4 + 5*0.3 + 5*0.3) * 8 = 40
	assert.Equal(t, 40.0, estimate.TotalHours)
	assert.Equal(t, 1.0, estimate.AdjustmentFactor)
}

func TestGenerateTimeEstimate_BreakdownCategoriesAndSum(t *testing.T) {
	e := NewEngine(nil)

	estimate := e.GenerateTimeEstimate(score(7, 4, 6), nil)

	require.Len(t, estimate.Breakdown, 4)
	categories := make([]string, 0, 4)
	var sum float64
	for _, b := range estimate.Breakdown {
		categories = append(categories, b.Category)
		sum += b.Hours
	}
	assert.ElementsMatch(t, []string{
		types.CategoryDevelopment, types.CategoryTesting,
		types.CategoryDocumentation, types.CategoryDeployment,
	}, categories)
	assert.InDelta(t, estimate.TotalHours, sum, 0.1)
}

func TestGenerateTimeEstimate_DevelopmentShare(t *testing.T) {
	e := NewEngine(nil)

	estimate := e.GenerateTimeEstimate(score(5, 5, 5), nil)

	assert.Equal(t, types.CategoryDevelopment, estimate.Breakdown[0].Category)
	assert.InDelta(t, estimate.TotalHours*0.6, estimate.Breakdown[0].Hours, 0.01)
}

func TestGenerateTimeEstimate_HistoricalAdjustmentAppliesOverruns(t *testing.T) {
	e := NewEngine(nil)

	// Proxy: 160h / 8 / 4 requirements = 5 points, within 2 of overall 5
	overrun := types.ProjectData{
		ID:             "p1",
		EstimatedHours: 160,
		ActualHours:    200,
		Requirements:   []string{"a", "b", "c", "d"},
	}

	estimate := e.GenerateTimeEstimate(score(5, 5, 5), &TimeOptions{
		HistoricalData: []types.ProjectData{overrun},
	})

	assert.InDelta(t, 1.25, estimate.AdjustmentFactor, 0.0001)
	assert.Equal(t, 50.0, estimate.TotalHours)
}

func TestGenerateTimeEstimate_AdjustmentClampedHigh(t *testing.T) {
	e := NewEngine(nil)

	blowout := types.ProjectData{
		ID:             "p1",
		EstimatedHours: 40,
		ActualHours:    200, // ratio 5.0
		Requirements:   []string{"a"},
	}

	estimate := e.GenerateTimeEstimate(score(5, 5, 5), &TimeOptions{
		HistoricalData: []types.ProjectData{blowout},
	})

	assert.Equal(t, 1.5, estimate.AdjustmentFactor)
}

func TestGenerateTimeEstimate_AdjustmentClampedLow(t *testing.T) {
	e := NewEngine(nil)

	underrun := types.ProjectData{
		ID:             "p1",
		EstimatedHours: 40,
		ActualHours:    10, // ratio 0.25
		Requirements:   []string{"a"},
	}

	estimate := e.GenerateTimeEstimate(score(5, 5, 5), &TimeOptions{
		HistoricalData: []types.ProjectData{underrun},
	})

	assert.Equal(t, 0.7, estimate.AdjustmentFactor)
}

func TestGenerateTimeEstimate_DissimilarProjectsIgnored(t *testing.T) {
	e := NewEngine(nil)

	// Proxy: 800h / 8 / 1 requirement = 100, clamped to 10, far from 2
	dissimilar := types.ProjectData{
		ID:             "p1",
		EstimatedHours: 800,
		ActualHours:    1600,
		Requirements:   []string{"a"},
	}

	estimate := e.GenerateTimeEstimate(score(2, 2, 2), &TimeOptions{
		HistoricalData: []types.ProjectData{dissimilar},
	})

	assert.Equal(t, 1.0, estimate.AdjustmentFactor)
}

func TestConfidence_AlwaysWithinBounds(t *testing.T) {
	e := NewEngine(nil)

	scores := []types.ComplexityScore{
		score(1, 1, 1),
		score(10, 10, 10),
		score(5, 5, 5),
	}
	for _, s := range scores {
		estimate := e.GenerateTimeEstimate(s, nil)
		assert.GreaterOrEqual(t, estimate.Confidence, 0.1)
		assert.LessOrEqual(t, estimate.Confidence, 1.0)
	}
}

func TestConfidence_HistorySampleBonus(t *testing.T) {
	e := NewEngine(nil)

	none := e.GenerateTimeEstimate(score(5, 5, 5), nil)

	projects := make([]types.ProjectData, 12)
	many := e.GenerateTimeEstimate(score(5, 5, 5), &TimeOptions{HistoricalData: projects})

	assert.InDelta(t, 0.2, many.Confidence-none.Confidence, 0.0001)
}

func TestConfidence_HighComplexityPenalty(t *testing.T) {
	e := NewEngine(nil)

	simple := e.GenerateTimeEstimate(score(3, 3, 3), nil)
	complexScore := e.GenerateTimeEstimate(score(9, 9, 9), nil)

	assert.Greater(t, simple.Confidence, complexScore.Confidence)
}

func TestConfidence_ClarityRewardsAcceptanceCriteria(t *testing.T) {
	e := NewEngine(nil)

	vague := []types.Requirement{{
		ID:          "r1",
		Type:        types.RequirementFunctional,
		Priority:    types.PriorityMedium,
		Description: "Make it nice",
	}}
	clear := []types.Requirement{{
		ID:          "r1",
		Type:        types.RequirementFunctional,
		Priority:    types.PriorityMedium,
		Description: "Expose a JSON HTTP endpoint returning paginated order history with database-backed cursors",
		AcceptanceCriteria: []string{
			"Returns 200 with page of 50 orders",
			"Cursor survives order deletion",
			"P99 latency under 200ms",
		},
	}}

	vagueEstimate := e.GenerateTimeEstimate(score(5, 5, 5), &TimeOptions{Requirements: vague})
	clearEstimate := e.GenerateTimeEstimate(score(5, 5, 5), &TimeOptions{Requirements: clear})

	assert.Greater(t, clearEstimate.Confidence, vagueEstimate.Confidence)
}

func TestGenerateTimeEstimateWithBuffer_TwentyPercent(t *testing.T) {
	e := NewEngine(nil)

	buffered := e.GenerateTimeEstimateWithBuffer(score(5, 5, 5), 0.2, nil)

	assert.Equal(t, 40.0, buffered.TotalHours)
	assert.Equal(t, 8.0, buffered.BufferHours)
	assert.Equal(t, 48.0, buffered.TotalWithBuffer)
}

func TestGenerateTimeEstimateWithBuffer_Zero(t *testing.T) {
	e := NewEngine(nil)

	buffered := e.GenerateTimeEstimateWithBuffer(score(5, 5, 5), 0, nil)

	assert.Equal(t, 0.0, buffered.BufferHours)
	assert.Equal(t, buffered.TotalHours, buffered.TotalWithBuffer)
}

func TestGenerateTimeEstimateWithBuffer_NegativeReducesTotal(t *testing.T) {
	e := NewEngine(nil)

	buffered := e.GenerateTimeEstimateWithBuffer(score(5, 5, 5), -0.1, nil)

	assert.Less(t, buffered.TotalWithBuffer, buffered.TotalHours)
	assert.Equal(t, -4.0, buffered.BufferHours)
}

func TestProjectComplexityProxy_Clamped(t *testing.T) {
	tiny := types.ProjectData{EstimatedHours: 1, Requirements: []string{"a"}}
	huge := types.ProjectData{EstimatedHours: 10000, Requirements: []string{"a"}}

	assert.Equal(t, 1.0, projectComplexityProxy(tiny))
	assert.Equal(t, 10.0, projectComplexityProxy(huge))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, 100.0, round2(100.004))
	assert.True(t, math.Abs(round2(15600.0)-15600.0) < 1e-9)
}
