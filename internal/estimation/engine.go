// Package estimation combines complexity and risk analysis into time
// estimates, cost estimates, scenario projections, resource
// allocations, and calibration statistics.
package estimation

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/project-estimator/internal/complexity"
	"github.com/jonathan/project-estimator/internal/history"
	"github.com/jonathan/project-estimator/internal/llm"
	"github.com/jonathan/project-estimator/internal/risk"
	"github.com/jonathan/project-estimator/internal/types"
)

// Engine orchestrates project estimation. It owns two pieces of
// mutable state: the rate configuration and a capped historical
// ledger. Everything else is a pure function of its inputs.
//
// One logical writer per instance: give each concurrent session its
// own Engine rather than sharing one across goroutines.
type Engine struct {
	analyzer *complexity.Analyzer
	risks    *risk.Analyzer
	rates    types.RateConfiguration
	ledger   *history.Ledger
}

// NewEngine creates an Engine with default rates. A nil client puts
// complexity scoring in heuristic-only mode.
func NewEngine(client llm.Client) *Engine {
	return &Engine{
		analyzer: complexity.NewAnalyzer(client),
		risks:    risk.NewAnalyzer(),
		rates:    types.DefaultRateConfiguration(),
		ledger:   history.NewLedger(history.DefaultCapacity),
	}
}

// Analyzer exposes the engine's complexity analyzer for direct
// single-requirement scoring and factor configuration.
func (e *Engine) Analyzer() *complexity.Analyzer {
	return e.analyzer
}

// SetRateConfiguration replaces the rate configuration used by all
// subsequent cost calculations.
func (e *Engine) SetRateConfiguration(rates types.RateConfiguration) error {
	if err := rates.Validate(); err != nil {
		return fmt.Errorf("invalid rate configuration: %w", err)
	}
	e.rates = rates
	return nil
}

// RateConfiguration returns the current rate configuration.
func (e *Engine) RateConfiguration() types.RateConfiguration {
	return e.rates
}

// AddHistoricalProject appends a completed project to the engine's
// ledger and the analyzer's own copy. Both are capped at 100 entries
// with oldest-first eviction.
func (e *Engine) AddHistoricalProject(p types.ProjectData) {
	e.ledger.Append(p)
	e.analyzer.AddHistoricalProject(p)
}

// HistoricalData returns a defensive copy of the engine's ledger.
func (e *Engine) HistoricalData() []types.ProjectData {
	return e.ledger.Snapshot()
}

// EstimateOptions adjusts a full project estimation run.
type EstimateOptions struct {
	// FactorOverrides scales complexity weights for this run only.
	FactorOverrides *types.FactorOverrides
	// ProjectContext is free text given to the scoring backend.
	ProjectContext string
	// UseHistoricalData enables historical adjustment and bias
	// correction from the engine's ledger.
	UseHistoricalData bool
	// IncludeRisks merges a risk assessment into the estimate.
	IncludeRisks bool
	// CodebaseMetrics feeds additional risk factors when IncludeRisks
	// is set.
	CodebaseMetrics *types.CodebaseMetrics
}

// GenerateProjectEstimate runs the full pipeline: complexity score,
// time estimate, cost, and optional risk assessment, assembled into a
// ProjectEstimate with a generated id.
func (e *Engine) GenerateProjectEstimate(ctx context.Context, requirements []types.Requirement, opts *EstimateOptions) types.ProjectEstimate {
	if opts == nil {
		opts = &EstimateOptions{}
	}

	score := e.analyzer.CalculateComplexity(ctx, requirements, &complexity.Options{
		FactorOverrides:   opts.FactorOverrides,
		ProjectContext:    opts.ProjectContext,
		UseHistoricalData: opts.UseHistoricalData,
	})

	timeOpts := &TimeOptions{Requirements: requirements}
	if opts.UseHistoricalData {
		timeOpts.HistoricalData = e.ledger.Snapshot()
	}
	timeEstimate := e.GenerateTimeEstimate(score, timeOpts)

	cost := e.CalculateCostBreakdown(timeEstimate)

	estimate := types.ProjectEstimate{
		ID:           fmt.Sprintf("estimate-%d", time.Now().UnixMilli()),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
		TotalHours:   timeEstimate.TotalHours,
		TotalCost:    cost.Total,
		Currency:     e.rates.Currency,
		Breakdown:    timeEstimate.Breakdown,
		Complexity:   score,
		Assumptions:  e.assumptions(),
		Confidence:   timeEstimate.Confidence,
		Requirements: requirementIDs(requirements),
	}

	if opts.IncludeRisks {
		assessment := e.risks.AssessRisks(requirements, opts.CodebaseMetrics)
		estimate.Risks = &assessment
	}

	return estimate
}

func (e *Engine) assumptions() []string {
	return []string{
		fmt.Sprintf("Billing at %.2f %s per hour with %.0f%% overhead and %.0f%% profit margin.",
			e.rates.HourlyRate, e.rates.Currency, e.rates.Overhead*100, e.rates.ProfitMargin*100),
		"Requirements are complete and will not change materially during delivery.",
		"The team is familiar with the core technology stack.",
	}
}

func requirementIDs(requirements []types.Requirement) []string {
	ids := make([]string, len(requirements))
	for i, r := range requirements {
		ids[i] = r.ID
	}
	return ids
}
