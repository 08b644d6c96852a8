package estimation

import (
	"context"

	"github.com/jonathan/project-estimator/internal/types"
)

// scenarioProfile holds the two knobs of a scenario: a per-axis scale
// applied to the complexity factors before analysis, and a post-hoc
// multiplier applied to the resulting hours and cost.
type scenarioProfile struct {
	factorScale float64
	multiplier  float64
}

var scenarioProfiles = map[types.ScenarioName]scenarioProfile{
	types.ScenarioOptimistic:  {factorScale: 0.75, multiplier: 0.85},
	types.ScenarioRealistic:   {factorScale: 1.0, multiplier: 1.0},
	types.ScenarioPessimistic: {factorScale: 1.3, multiplier: 1.25},
}

// GenerateScenarios derives one estimate per named scenario from the
// same requirement set. Unknown scenario names are skipped. For any
// requirement set producing nonzero base hours, optimistic hours are
// strictly below realistic, and realistic strictly below pessimistic.
func (e *Engine) GenerateScenarios(ctx context.Context, requirements []types.Requirement, scenarios []types.ScenarioName, opts *EstimateOptions) []types.ScenarioEstimate {
	if opts == nil {
		opts = &EstimateOptions{}
	}

	out := make([]types.ScenarioEstimate, 0, len(scenarios))
	for _, name := range scenarios {
		profile, ok := scenarioProfiles[name]
		if !ok {
			continue
		}

		scenarioOpts := *opts
		scenarioOpts.FactorOverrides = scaledOverrides(e.analyzer.Factors(), opts.FactorOverrides, profile.factorScale)

		estimate := e.GenerateProjectEstimate(ctx, requirements, &scenarioOpts)
		applyMultiplier(&estimate, profile.multiplier)

		out = append(out, types.ScenarioEstimate{
			Scenario:   name,
			Multiplier: profile.multiplier,
			Estimate:   estimate,
		})
	}
	return out
}

// scaledOverrides scales every complexity axis weight by the scenario
// factor, starting from the caller's overrides where given and the
// analyzer's configuration elsewhere.
func scaledOverrides(base types.ComplexityFactors, overrides *types.FactorOverrides, scale float64) *types.FactorOverrides {
	pick := func(override *float64, current float64) *float64 {
		v := current * scale
		if override != nil {
			v = *override * scale
		}
		return &v
	}

	return &types.FactorOverrides{
		Technical:     pick(overridesField(overrides, func(o *types.FactorOverrides) *float64 { return o.Technical }), base.Technical),
		Business:      pick(overridesField(overrides, func(o *types.FactorOverrides) *float64 { return o.Business }), base.Business),
		Integration:   pick(overridesField(overrides, func(o *types.FactorOverrides) *float64 { return o.Integration }), base.Integration),
		Testing:       pick(overridesField(overrides, func(o *types.FactorOverrides) *float64 { return o.Testing }), base.Testing),
		Documentation: pick(overridesField(overrides, func(o *types.FactorOverrides) *float64 { return o.Documentation }), base.Documentation),
	}
}

func overridesField(o *types.FactorOverrides, get func(*types.FactorOverrides) *float64) *float64 {
	if o == nil {
		return nil
	}
	return get(o)
}

// applyMultiplier scales an estimate's hours, cost, and breakdown in
// place on the derived copy.
func applyMultiplier(estimate *types.ProjectEstimate, multiplier float64) {
	estimate.TotalHours = round2(estimate.TotalHours * multiplier)
	estimate.TotalCost = round2(estimate.TotalCost * multiplier)
	for i := range estimate.Breakdown {
		estimate.Breakdown[i].Hours = round2(estimate.Breakdown[i].Hours * multiplier)
	}
}
