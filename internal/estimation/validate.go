package estimation

import (
	"fmt"

	"github.com/jonathan/project-estimator/internal/types"
)

// Sanity bounds for estimate validation.
const (
	minHoursPerRequirement = 2.0
	maxHoursPerRequirement = 100.0
	lowConfidenceThreshold = 0.5
)

// mandatoryCategories must all be present in a well-formed breakdown.
var mandatoryCategories = []string{
	types.CategoryDevelopment,
	types.CategoryTesting,
	types.CategoryDocumentation,
}

// ValidateEstimate sanity-checks a finished estimate against its
// requirements. Valid is true exactly when no warnings were raised;
// suggestions never affect validity.
func (e *Engine) ValidateEstimate(estimate types.ProjectEstimate, requirements []types.Requirement) types.EstimateValidation {
	warnings := []string{}
	suggestions := []string{}

	if len(requirements) > 0 {
		perRequirement := estimate.TotalHours / float64(len(requirements))
		if perRequirement < minHoursPerRequirement {
			warnings = append(warnings, fmt.Sprintf("Average of %.1f hours per requirement is suspiciously low; the estimate may be missing work.", perRequirement))
		}
		if perRequirement > maxHoursPerRequirement {
			warnings = append(warnings, fmt.Sprintf("Average of %.1f hours per requirement is suspiciously high; consider splitting requirements.", perRequirement))
		}
	}

	if estimate.Confidence < lowConfidenceThreshold {
		warnings = append(warnings, fmt.Sprintf("Confidence %.2f is below %.1f; clarify requirements before committing to this estimate.", estimate.Confidence, lowConfidenceThreshold))
	}

	present := make(map[string]bool, len(estimate.Breakdown))
	for _, b := range estimate.Breakdown {
		present[b.Category] = true
	}
	for _, category := range mandatoryCategories {
		if !present[category] {
			warnings = append(warnings, fmt.Sprintf("Breakdown is missing the mandatory %s category.", category))
		}
	}

	if estimate.Risks == nil {
		suggestions = append(suggestions, "Run a risk assessment to complement this estimate.")
	}
	if len(estimate.Requirements) > 0 && estimate.Confidence < 0.8 {
		suggestions = append(suggestions, "Add acceptance criteria to requirements to raise estimation confidence.")
	}

	return types.EstimateValidation{
		Valid:       len(warnings) == 0,
		Warnings:    warnings,
		Suggestions: suggestions,
	}
}
