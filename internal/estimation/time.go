package estimation

import (
	"math"

	"github.com/jonathan/project-estimator/internal/types"
)

// Hour and confidence constants for the time estimation formulas.
const (
	hoursPerComplexityPoint = 8.0

	technicalWeight   = 0.4
	businessWeight    = 0.3
	integrationWeight = 0.3

	minAdjustment = 0.7
	maxAdjustment = 1.5

	// similarityWindow is the complexity-point distance within which a
	// historical project counts as similar. A coarse heuristic kept for
	// behavioral compatibility with past estimates.
	similarityWindow = 2.0

	baseConfidence = 0.7
	minConfidence  = 0.1
	maxConfidence  = 1.0
)

// Breakdown shares of total hours across the four fixed phases.
var breakdownShares = []struct {
	category    string
	share       float64
	description string
}{
	{types.CategoryDevelopment, 0.60, "Implementation of functional requirements"},
	{types.CategoryTesting, 0.25, "Unit, integration and acceptance testing"},
	{types.CategoryDocumentation, 0.10, "Technical and user documentation"},
	{types.CategoryDeployment, 0.05, "Release preparation and deployment"},
}

// TimeOptions adjusts a time estimate.
type TimeOptions struct {
	// Requirements feed the clarity component of confidence. Optional.
	Requirements []types.Requirement
	// HistoricalData enables the historical adjustment factor. Optional.
	HistoricalData []types.ProjectData
}

// GenerateTimeEstimate converts a complexity score into hours. Base
// hours weight the three axes 0.4/0.3/0.3 at 8 hours per complexity
// point, adjusted by the history of similar projects and split into the
// four fixed breakdown categories.
func (e *Engine) GenerateTimeEstimate(score types.ComplexityScore, opts *TimeOptions) types.TimeEstimate {
	if opts == nil {
		opts = &TimeOptions{}
	}

	base := (score.Technical*technicalWeight + score.Business*businessWeight + score.Integration*integrationWeight) * hoursPerComplexityPoint

	adjustment := historicalAdjustment(score.Overall, opts.HistoricalData)
	total := round2(base * adjustment)

	breakdown := make([]types.EstimateBreakdown, 0, len(breakdownShares))
	for _, s := range breakdownShares {
		breakdown = append(breakdown, types.EstimateBreakdown{
			Category:    s.category,
			Hours:       round2(total * s.share),
			Description: s.description,
		})
	}

	return types.TimeEstimate{
		TotalHours:       total,
		Breakdown:        breakdown,
		Confidence:       confidence(score, opts.Requirements, len(opts.HistoricalData)),
		AdjustmentFactor: adjustment,
	}
}

// GenerateTimeEstimateWithBuffer adds an explicit contingency buffer on
// top of a time estimate. Zero and negative buffer percentages are
// allowed; a negative buffer reduces the effective total.
func (e *Engine) GenerateTimeEstimateWithBuffer(score types.ComplexityScore, bufferPct float64, opts *TimeOptions) types.BufferedTimeEstimate {
	base := e.GenerateTimeEstimate(score, opts)
	buffer := round2(base.TotalHours * bufferPct)
	return types.BufferedTimeEstimate{
		TimeEstimate:     base,
		BufferPercentage: bufferPct,
		BufferHours:      buffer,
		TotalWithBuffer:  round2(base.TotalHours + buffer),
	}
}

// historicalAdjustment averages actual/estimated ratios across projects
// whose complexity proxy falls within the similarity window, clamped to
// [0.7, 1.5]. Defaults to 1.0 with no matching history.
func historicalAdjustment(overall float64, projects []types.ProjectData) float64 {
	var sum float64
	var n int
	for _, p := range projects {
		if p.EstimatedHours <= 0 {
			continue
		}
		if math.Abs(projectComplexityProxy(p)-overall) >= similarityWindow {
			continue
		}
		sum += p.ActualHours / p.EstimatedHours
		n++
	}
	if n == 0 {
		return 1.0
	}
	return clamp(sum/float64(n), minAdjustment, maxAdjustment)
}

// projectComplexityProxy estimates a past project's complexity from its
// recorded hours: estimated hours per requirement at 8 hours per point,
// clamped to the [1,10] score scale.
func projectComplexityProxy(p types.ProjectData) float64 {
	reqs := len(p.Requirements)
	if reqs == 0 {
		reqs = 1
	}
	return clamp(p.EstimatedHours/hoursPerComplexityPoint/float64(reqs), 1, 10)
}

// confidence starts at 0.7, rewarded by historical sample size,
// adjusted by average complexity against the midpoint, then shifted by
// requirement clarity, and clamped to [0.1, 1.0].
func confidence(score types.ComplexityScore, requirements []types.Requirement, historySize int) float64 {
	c := baseConfidence

	switch {
	case historySize > 10:
		c += 0.2
	case historySize > 5:
		c += 0.1
	}

	if score.Overall > 5 {
		c -= 0.1
	} else {
		c += 0.1
	}

	// Clarity 0.5 is neutral; fully clear requirements add 0.1, fully
	// vague ones subtract 0.1.
	c += (clarityScore(requirements) - 0.5) * 0.2

	return clamp(c, minConfidence, maxConfidence)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
