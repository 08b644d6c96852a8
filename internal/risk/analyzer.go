package risk

import (
	"fmt"
	"strings"

	"github.com/jonathan/project-estimator/internal/types"
)

// Thresholds for the overall risk level and the proportion-based
// business/resource signals.
const (
	highThreshold   = 0.7
	mediumThreshold = 0.4

	vagueProportionThreshold        = 0.3
	highPriorityProportionThreshold = 0.5

	debtRatioThreshold       = 0.7
	dependencyCountThreshold = 50
)

// Analyzer detects project risks from requirement text. Stateless; a
// single instance can serve any number of assessments.
type Analyzer struct{}

// NewAnalyzer creates a risk Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AssessRisks runs the four detection passes (technical, integration,
// business, resource) over the requirement set, plus codebase-metric
// checks when metrics are provided. An empty requirement set yields a
// low overall risk with no factors, regardless of metrics.
func (a *Analyzer) AssessRisks(requirements []types.Requirement, metrics *types.CodebaseMetrics) types.RiskAssessment {
	if len(requirements) == 0 {
		return types.RiskAssessment{
			Overall:         types.ImpactLow,
			Factors:         []types.RiskFactor{},
			Recommendations: []string{},
		}
	}

	factors := []types.RiskFactor{}
	factors = append(factors, matchPatterns(requirements, technicalPatterns)...)
	factors = append(factors, matchPatterns(requirements, integrationPatterns)...)
	factors = append(factors, a.businessRisks(requirements)...)
	factors = append(factors, a.resourceRisks(requirements)...)

	if metrics != nil {
		factors = append(factors, codebaseRisks(*metrics)...)
	}

	return types.RiskAssessment{
		Overall:         overallLevel(factors),
		Factors:         factors,
		Recommendations: buildRecommendations(factors),
	}
}

// matchPatterns fires each pattern at most once across the whole set.
func matchPatterns(requirements []types.Requirement, patterns []pattern) []types.RiskFactor {
	var out []types.RiskFactor
	for _, p := range patterns {
		for _, req := range requirements {
			if containsAny(req.Description, p.keywords) {
				out = append(out, p.factor())
				break
			}
		}
	}
	return out
}

func (p pattern) factor() types.RiskFactor {
	return types.RiskFactor{
		ID:          p.id,
		Name:        p.name,
		Probability: p.probability,
		Impact:      p.impact,
		Description: p.description,
		Mitigation:  p.mitigation,
	}
}

// businessRisks detects scope-creep (high proportion of vague wording)
// and stakeholder misalignment (contradictory keyword pairs across
// requirements).
func (a *Analyzer) businessRisks(requirements []types.Requirement) []types.RiskFactor {
	var out []types.RiskFactor

	vague := 0
	for _, req := range requirements {
		if containsAny(req.Description, vagueTerms) {
			vague++
		}
	}
	if float64(vague)/float64(len(requirements)) > vagueProportionThreshold {
		out = append(out, types.RiskFactor{
			ID:          "biz-scope-creep",
			Name:        "Scope Creep Risk",
			Probability: 0.65,
			Impact:      types.ImpactHigh,
			Description: fmt.Sprintf("%d of %d requirements are vaguely worded, inviting scope expansion.", vague, len(requirements)),
			Mitigation:  "Rewrite vague requirements with measurable acceptance criteria before estimation is final.",
		})
	}

	if left, right, found := findContradiction(requirements); found {
		out = append(out, types.RiskFactor{
			ID:          "biz-stakeholder-alignment",
			Name:        "Stakeholder Alignment Risk",
			Probability: 0.5,
			Impact:      types.ImpactMedium,
			Description: fmt.Sprintf("Requirements pull in opposite directions (%q vs %q), suggesting unaligned stakeholders.", left, right),
			Mitigation:  "Hold an alignment workshop to resolve contradictory expectations before implementation.",
		})
	}

	return out
}

// resourceRisks detects specialized-skill needs and timeline pressure
// from a high proportion of high-priority requirements.
func (a *Analyzer) resourceRisks(requirements []types.Requirement) []types.RiskFactor {
	out := matchPatterns(requirements, resourcePatterns)

	highPriority := 0
	for _, req := range requirements {
		if req.Priority == types.PriorityHigh {
			highPriority++
		}
	}
	if float64(highPriority)/float64(len(requirements)) > highPriorityProportionThreshold {
		out = append(out, types.RiskFactor{
			ID:          "res-timeline-pressure",
			Name:        "Timeline Pressure Risk",
			Probability: 0.6,
			Impact:      types.ImpactHigh,
			Description: fmt.Sprintf("%d of %d requirements are high priority; everything urgent means nothing is.", highPriority, len(requirements)),
			Mitigation:  "Force-rank the high-priority requirements and stage delivery in increments.",
		})
	}

	return out
}

// codebaseRisks adds factors derived from metrics about an existing
// codebase the project builds on.
func codebaseRisks(m types.CodebaseMetrics) []types.RiskFactor {
	var out []types.RiskFactor

	if m.TechnicalDebtRatio > debtRatioThreshold {
		out = append(out, types.RiskFactor{
			ID:          "code-technical-debt",
			Name:        "Technical Debt Risk",
			Probability: 0.7,
			Impact:      types.ImpactHigh,
			Description: fmt.Sprintf("Technical debt ratio %.2f exceeds the %.1f threshold; velocity will degrade.", m.TechnicalDebtRatio, debtRatioThreshold),
			Mitigation:  "Budget explicit refactoring time in every iteration touching the affected modules.",
		})
	}

	if m.DependencyCount > dependencyCountThreshold {
		out = append(out, types.RiskFactor{
			ID:          "code-dependency-surface",
			Name:        "Dependency Surface Risk",
			Probability: 0.5,
			Impact:      types.ImpactMedium,
			Description: fmt.Sprintf("%d dependencies widen the upgrade and vulnerability surface.", m.DependencyCount),
			Mitigation:  "Run a dependency audit and prune or pin before new work lands on top.",
		})
	}

	if m.HighSeverityIssues > 0 {
		out = append(out, types.RiskFactor{
			ID:          "code-existing-issues",
			Name:        "Existing Issues Risk",
			Probability: 0.6,
			Impact:      types.ImpactHigh,
			Description: fmt.Sprintf("%d high-severity issues are already open in the codebase.", m.HighSeverityIssues),
			Mitigation:  "Triage and burn down high-severity issues before stacking new functionality on them.",
		})
	}

	return out
}

// overallLevel aggregates factor probabilities weighted by impact:
// sum(p*w)/count, then thresholds at 0.7 and 0.4.
func overallLevel(factors []types.RiskFactor) types.RiskImpact {
	if len(factors) == 0 {
		return types.ImpactLow
	}

	var sum float64
	for _, f := range factors {
		sum += f.Probability * f.Impact.Weight()
	}
	score := sum / float64(len(factors))

	switch {
	case score >= highThreshold:
		return types.ImpactHigh
	case score >= mediumThreshold:
		return types.ImpactMedium
	default:
		return types.ImpactLow
	}
}

// buildRecommendations collects factor mitigations into a deduplicated
// list preserving insertion order, then appends general recommendations
// triggered by factor characteristics.
func buildRecommendations(factors []types.RiskFactor) []string {
	seen := make(map[string]bool)
	out := []string{}

	add := func(rec string) {
		if !seen[rec] {
			seen[rec] = true
			out = append(out, rec)
		}
	}

	hasHighImpact := false
	hasTechnology := false
	for _, f := range factors {
		add(f.Mitigation)
		if f.Impact == types.ImpactHigh {
			hasHighImpact = true
		}
		if strings.Contains(f.Name, "Technology") || strings.Contains(f.Name, "Technical") {
			hasTechnology = true
		}
	}

	if hasHighImpact {
		add("Set up continuous risk monitoring with weekly review checkpoints.")
		add("Prepare contingency plans for the highest-impact risk factors.")
	}
	if hasTechnology {
		add("Build a proof of concept to validate the technical approach before full implementation.")
	}

	return out
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// findContradiction scans for the first contradiction pair whose two
// sides appear in different requirements.
func findContradiction(requirements []types.Requirement) (string, string, bool) {
	for _, pair := range contradictionPairs {
		var leftAt, rightAt = -1, -1
		for i, req := range requirements {
			lower := strings.ToLower(req.Description)
			if leftAt < 0 && strings.Contains(lower, pair[0]) {
				leftAt = i
			}
			if rightAt < 0 && strings.Contains(lower, pair[1]) {
				rightAt = i
			}
		}
		if leftAt >= 0 && rightAt >= 0 && leftAt != rightAt {
			return pair[0], pair[1], true
		}
	}
	return "", "", false
}
