package estimation

import (
	"context"
	"fmt"

	"github.com/jonathan/project-estimator/internal/types"
)

// Work-complexity bucket shares of total hours.
const (
	complexShare  = 0.4
	moderateShare = 0.4
	simpleShare   = 0.2
)

// ErrEmptyTeam is returned when a team configuration has no developers
// in any tier. This is the engine's only caller-visible failure mode.
var ErrEmptyTeam = fmt.Errorf("team configuration must include at least one developer")

// GenerateResourceBasedEstimate allocates an estimate's hours across
// developer tiers. Total hours split 40/40/20 into complex, moderate
// and simple work; seniors take the complex work plus half the
// moderate, mids the other half of moderate plus half the simple,
// juniors the remaining half of simple. Tier costs are priced at the
// tier rates and scaled by overhead and profit margin.
func (e *Engine) GenerateResourceBasedEstimate(ctx context.Context, requirements []types.Requirement, team types.TeamConfiguration, opts *EstimateOptions) (*types.ResourceEstimate, error) {
	if err := validateTeam(team); err != nil {
		return nil, err
	}

	estimate := e.GenerateProjectEstimate(ctx, requirements, opts)

	complexHours := estimate.TotalHours * complexShare
	moderateHours := estimate.TotalHours * moderateShare
	simpleHours := estimate.TotalHours * simpleShare

	allocations := []types.TierAllocation{
		{Tier: "senior", Hours: round2(complexHours + moderateHours/2), Rate: team.Rates.Senior},
		{Tier: "mid", Hours: round2(moderateHours/2 + simpleHours/2), Rate: team.Rates.Mid},
		{Tier: "junior", Hours: round2(simpleHours / 2), Rate: team.Rates.Junior},
	}

	var subtotal float64
	for i := range allocations {
		allocations[i].Cost = round2(allocations[i].Hours * allocations[i].Rate)
		subtotal += allocations[i].Cost
	}
	subtotal = round2(subtotal)

	withOverhead := round2(subtotal * (1 + e.rates.Overhead))
	total := round2(withOverhead * (1 + e.rates.ProfitMargin))

	return &types.ResourceEstimate{
		TotalHours:  estimate.TotalHours,
		TotalCost:   total,
		Currency:    e.rates.Currency,
		Allocations: allocations,
		Confidence:  estimate.Confidence,
	}, nil
}

func validateTeam(team types.TeamConfiguration) error {
	if err := team.Validate(); err != nil {
		return fmt.Errorf("invalid team configuration: %w", err)
	}
	if team.TotalMembers() == 0 {
		return ErrEmptyTeam
	}
	return nil
}
