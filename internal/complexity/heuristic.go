package complexity

import "github.com/jonathan/project-estimator/internal/types"

// Heuristic score bounds and base value.
const (
	minScore  = 1.0
	maxScore  = 10.0
	baseScore = 5.0
)

// HeuristicScore deterministically rates a single requirement on the
// [1,10] scale. Used whenever the scoring backend is unavailable,
// fails, or returns unparseable text.
//
// Base 5, +1 per matched emerging-technology category, +1 for
// non-functional requirements, +1 for high priority, clamped.
func HeuristicScore(req types.Requirement) float64 {
	score := baseScore
	score += float64(emergingTechCount(req.Description))
	if req.Type == types.RequirementNonFunctional {
		score++
	}
	if req.Priority == types.PriorityHigh {
		score++
	}
	return clamp(score, minScore, maxScore)
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
