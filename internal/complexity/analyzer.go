package complexity

import (
	"context"
	"sort"
	"strings"

	"github.com/jonathan/project-estimator/internal/history"
	"github.com/jonathan/project-estimator/internal/llm"
	"github.com/jonathan/project-estimator/internal/types"
)

// ScoreSource identifies which stage of the scoring pipeline produced
// a value.
type ScoreSource string

// Score sources
const (
	// SourceModel means the scoring backend returned a usable rating.
	SourceModel ScoreSource = "model"
	// SourceHeuristic means the deterministic fallback produced the rating.
	SourceHeuristic ScoreSource = "heuristic"
)

// ScoreResult is the discriminated outcome of scoring one requirement.
// Reason is set only on the fallback path and records why the backend
// result was unusable.
type ScoreResult struct {
	Value  float64     `json:"value"`
	Source ScoreSource `json:"source"`
	Reason string      `json:"reason,omitempty"`
}

// Options adjusts a single complexity calculation.
type Options struct {
	// FactorOverrides partially overrides the analyzer's weight
	// configuration for this call only (applied via UpdateFactors
	// semantics but scoped to the call when set here).
	FactorOverrides *types.FactorOverrides
	// ProjectContext is free text prepended to every scoring prompt.
	ProjectContext string
	// UseHistoricalData enables the historical-bias nudge on the
	// overall axis.
	UseHistoricalData bool
}

// Analyzer scores requirement sets into multi-axis complexity scores.
// One logical writer per instance; not safe for concurrent mutation.
type Analyzer struct {
	client  llm.Client // nil means heuristic-only
	tier    llm.ModelTier
	factors types.ComplexityFactors
	ledger  *history.Ledger
}

// NewAnalyzer creates an Analyzer. A nil client is valid and puts the
// analyzer in heuristic-only mode.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{
		client:  client,
		tier:    llm.TierLite,
		factors: types.DefaultComplexityFactors(),
		ledger:  history.NewLedger(history.DefaultCapacity),
	}
}

// UpdateFactors merges the given overrides into the analyzer's weight
// configuration. Affects all subsequent calls. No range validation is
// performed; callers own weight sanity.
func (a *Analyzer) UpdateFactors(overrides types.FactorOverrides) {
	if overrides.Technical != nil {
		a.factors.Technical = *overrides.Technical
	}
	if overrides.Business != nil {
		a.factors.Business = *overrides.Business
	}
	if overrides.Integration != nil {
		a.factors.Integration = *overrides.Integration
	}
	if overrides.Testing != nil {
		a.factors.Testing = *overrides.Testing
	}
	if overrides.Documentation != nil {
		a.factors.Documentation = *overrides.Documentation
	}
}

// Factors returns a copy of the current weight configuration.
func (a *Analyzer) Factors() types.ComplexityFactors {
	return a.factors
}

// AddHistoricalProject appends a completed project to the analyzer's
// capped ledger.
func (a *Analyzer) AddHistoricalProject(p types.ProjectData) {
	a.ledger.Append(p)
}

// HistoricalData returns a defensive copy of the retained ledger.
func (a *Analyzer) HistoricalData() []types.ProjectData {
	return a.ledger.Snapshot()
}

// AnalyzeRequirement scores a single requirement on [1,10]. The scoring
// backend is tried once; any error or unparseable response falls back
// to the deterministic heuristic. Backend failures never propagate.
func (a *Analyzer) AnalyzeRequirement(ctx context.Context, req types.Requirement, projectContext string) ScoreResult {
	if a.client == nil {
		return ScoreResult{
			Value:  HeuristicScore(req),
			Source: SourceHeuristic,
			Reason: "no scoring backend configured",
		}
	}

	text, err := a.client.GenerateContent(ctx, buildScoringPrompt(req, projectContext), a.tier)
	if err != nil {
		return ScoreResult{
			Value:  HeuristicScore(req),
			Source: SourceHeuristic,
			Reason: "backend error: " + err.Error(),
		}
	}

	score, err := llm.ParseScore(text)
	if err != nil {
		return ScoreResult{
			Value:  HeuristicScore(req),
			Source: SourceHeuristic,
			Reason: "unparseable response: " + err.Error(),
		}
	}

	return ScoreResult{Value: clamp(score, minScore, maxScore), Source: SourceModel}
}

// CalculateComplexity scores a requirement set into technical, business
// and integration axes. Requirements are scored sequentially, one
// backend call at a time, bounding load on the scoring backend. The
// result is always well-formed regardless of backend behavior.
func (a *Analyzer) CalculateComplexity(ctx context.Context, requirements []types.Requirement, opts *Options) types.ComplexityScore {
	factors := a.factors
	projectContext := ""
	useHistory := false
	if opts != nil {
		if opts.FactorOverrides != nil {
			factors = mergedFactors(factors, *opts.FactorOverrides)
		}
		projectContext = opts.ProjectContext
		useHistory = opts.UseHistoricalData
	}

	if len(requirements) == 0 {
		return types.ComplexityScore{Overall: minScore, Technical: minScore, Business: minScore, Integration: minScore}
	}

	scores := make([]float64, len(requirements))
	for i, req := range requirements {
		scores[i] = a.AnalyzeRequirement(ctx, req, projectContext).Value
	}

	technical := axisScore(requirements, scores, technicalKeywords, factors.Technical)
	business := axisScore(requirements, scores, businessKeywords, factors.Business)
	integration := axisScore(requirements, scores, integrationKeywords, factors.Integration)

	// Overall is the unweighted mean of the three axes.
	overall := (technical + business + integration) / 3

	if useHistory {
		overall = a.applyHistoricalBias(overall, requirements)
	}

	return types.ComplexityScore{
		Overall:     clamp(overall, minScore, maxScore),
		Technical:   technical,
		Business:    business,
		Integration: integration,
		Factors:     categoryFactors(requirements, scores),
	}
}

// mergedFactors applies overrides to a copy without touching the
// analyzer's configuration.
func mergedFactors(base types.ComplexityFactors, o types.FactorOverrides) types.ComplexityFactors {
	if o.Technical != nil {
		base.Technical = *o.Technical
	}
	if o.Business != nil {
		base.Business = *o.Business
	}
	if o.Integration != nil {
		base.Integration = *o.Integration
	}
	if o.Testing != nil {
		base.Testing = *o.Testing
	}
	if o.Documentation != nil {
		base.Documentation = *o.Documentation
	}
	return base
}

// axisScore averages the scores of requirements whose descriptions
// match the axis keyword set, weighted by the axis factor. A
// requirement can contribute to multiple axes. When no requirement
// matches, the axis falls back to the overall mean so an axis never
// reads as trivially easy just because its keywords are absent.
func axisScore(requirements []types.Requirement, scores []float64, keywords []string, weight float64) float64 {
	var sum float64
	var n int
	for i, req := range requirements {
		if containsAny(req.Description, keywords) {
			sum += scores[i]
			n++
		}
	}
	if n == 0 {
		for _, s := range scores {
			sum += s
		}
		n = len(scores)
	}
	return clamp((sum/float64(n))*weight, minScore, maxScore)
}

// categoryFactors produces the named sub-scores: one entry per
// emerging-tech category matched by at least one requirement, carrying
// the mean score of its contributors. Sorted by name for stable output.
func categoryFactors(requirements []types.Requirement, scores []float64) []types.FactorScore {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, req := range requirements {
		lower := strings.ToLower(req.Description)
		for name, keywords := range emergingTechCategories {
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					sums[name] += scores[i]
					counts[name]++
					break
				}
			}
		}
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.FactorScore, 0, len(names))
	for _, name := range names {
		out = append(out, types.FactorScore{
			Name:  name,
			Score: clamp(sums[name]/float64(counts[name]), minScore, maxScore),
		})
	}
	return out
}

// applyHistoricalBias nudges the overall score upward when past
// projects with overlapping requirement text ran over their estimates.
// A nudge, not an override: the adjustment is capped at one point.
func (a *Analyzer) applyHistoricalBias(overall float64, requirements []types.Requirement) float64 {
	var ratioSum float64
	var n int
	for _, p := range a.ledger.Snapshot() {
		if p.EstimatedHours <= 0 || !overlapsRequirements(p, requirements) {
			continue
		}
		ratioSum += p.ActualHours / p.EstimatedHours
		n++
	}
	if n == 0 {
		return overall
	}

	avgRatio := ratioSum / float64(n)
	if avgRatio <= 1 {
		return overall
	}
	return overall + clamp(avgRatio-1, 0, 1)
}

// overlapsRequirements reports whether any of the historical project's
// recorded requirement texts shares a significant word with a current
// requirement description. Coarse by design; see calibration for the
// principled correction path.
func overlapsRequirements(p types.ProjectData, requirements []types.Requirement) bool {
	for _, past := range p.Requirements {
		pastLower := strings.ToLower(past)
		for _, req := range requirements {
			for _, word := range strings.Fields(strings.ToLower(req.Description)) {
				if len(word) >= 5 && strings.Contains(pastLower, word) {
					return true
				}
			}
		}
	}
	return false
}
