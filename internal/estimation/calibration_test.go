package estimation

import (
	"testing"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrateEstimates_EmptyInputSentinel(t *testing.T) {
	e := NewEngine(nil)

	report := e.CalibrateEstimates(nil)

	assert.Equal(t, 0.0, report.Accuracy)
	assert.Equal(t, 0.0, report.Bias)
	assert.Equal(t, []string{"No historical data available for calibration"}, report.Recommendations)
}

func TestCalibrateEstimates_PerfectEstimates(t *testing.T) {
	e := NewEngine(nil)

	projects := make([]types.ProjectData, 12)
	for i := range projects {
		projects[i] = types.ProjectData{EstimatedHours: 100, ActualHours: 100}
	}

	report := e.CalibrateEstimates(projects)

	assert.Equal(t, 1.0, report.Accuracy)
	assert.Equal(t, 0.0, report.Bias)
	assert.Equal(t, []string{"Estimation accuracy is within acceptable bounds; no adjustment needed."}, report.Recommendations)
}

func TestCalibrateEstimates_SystematicUnderestimation(t *testing.T) {
	e := NewEngine(nil)

	// Actuals ran 25% over the estimate on every project
	projects := []types.ProjectData{
		{EstimatedHours: 80, ActualHours: 100},
		{EstimatedHours: 160, ActualHours: 200},
	}

	report := e.CalibrateEstimates(projects)

	assert.InDelta(t, 0.8, report.Accuracy, 0.0001)
	assert.InDelta(t, -0.2, report.Bias, 0.0001)
}

func TestCalibrateEstimates_BiasRecommendationThreshold(t *testing.T) {
	e := NewEngine(nil)

	projects := []types.ProjectData{
		{EstimatedHours: 60, ActualHours: 100}, // bias -0.4
	}

	report := e.CalibrateEstimates(projects)

	found := false
	for _, rec := range report.Recommendations {
		if rec == "Actuals systematically exceed estimates; consider adding buffer to future estimates." {
			found = true
		}
	}
	assert.True(t, found, "expected underestimation recommendation, got %v", report.Recommendations)
}

func TestCalibrateEstimates_SmallSampleRecommendation(t *testing.T) {
	e := NewEngine(nil)

	report := e.CalibrateEstimates([]types.ProjectData{
		{EstimatedHours: 100, ActualHours: 100},
	})

	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[len(report.Recommendations)-1], "calibration confidence is limited")
}

func TestCalibrateEstimates_AccuracyClampedAtZero(t *testing.T) {
	e := NewEngine(nil)

	report := e.CalibrateEstimates([]types.ProjectData{
		{EstimatedHours: 1000, ActualHours: 100}, // 900% error
	})

	assert.Equal(t, 0.0, report.Accuracy)
}

func TestCalibrateEstimates_ZeroActualHoursSkipped(t *testing.T) {
	e := NewEngine(nil)

	report := e.CalibrateEstimates([]types.ProjectData{
		{EstimatedHours: 100, ActualHours: 0},
	})

	assert.Equal(t, 0.0, report.Accuracy)
	assert.Equal(t, []string{"No historical data available for calibration"}, report.Recommendations)
}
