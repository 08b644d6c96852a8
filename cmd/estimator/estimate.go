package main

import (
	"context"
	"os"

	"github.com/jonathan/project-estimator/internal/estimation"
	"github.com/jonathan/project-estimator/internal/observability"
	"github.com/jonathan/project-estimator/internal/schemas"
	"github.com/jonathan/project-estimator/internal/types"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Generate a full project estimate from a requirements file",
	Long:  "Generate a complexity score, time estimate, and cost estimate from a requirements JSON file, optionally merged with a risk assessment and adjusted by historical project data.",
	RunE:  runEstimate,
}

var (
	estimateInputFile   string
	estimateOutputFile  string
	estimateConfigFile  string
	estimateAPIKey      string
	estimateWithRisks   bool
	estimateWithHistory bool
	estimateContext     string
	estimateBuffer      float64
	estimateVerbose     bool
)

func init() {
	estimateCmd.Flags().StringVarP(&estimateInputFile, "in", "i", "", "Path to requirements JSON file (required)")
	estimateCmd.Flags().StringVarP(&estimateOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	estimateCmd.Flags().StringVarP(&estimateConfigFile, "config", "c", "", "Path to config JSON file")
	estimateCmd.Flags().StringVar(&estimateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	estimateCmd.Flags().BoolVar(&estimateWithRisks, "risks", false, "Include a risk assessment in the estimate")
	estimateCmd.Flags().BoolVar(&estimateWithHistory, "history", false, "Adjust the estimate using historical project data")
	estimateCmd.Flags().StringVar(&estimateContext, "context", "", "Free-text project context given to the scoring backend")
	estimateCmd.Flags().Float64Var(&estimateBuffer, "buffer", 0, "Contingency buffer fraction added to the time estimate (0.2 = 20%)")
	estimateCmd.Flags().BoolVarP(&estimateVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	_ = estimateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadCLIConfig(estimateConfigFile)
	if err != nil {
		return err
	}

	requirements, err := loadRequirements(estimateInputFile)
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(ctx, cfg, estimateAPIKey)
	if err != nil {
		return err
	}
	defer cleanup()

	useHistory := estimateWithHistory || cfg.UseHistoricalData
	estimate := engine.GenerateProjectEstimate(ctx, requirements, &estimation.EstimateOptions{
		ProjectContext:    estimateContext,
		UseHistoricalData: useHistory,
		IncludeRisks:      estimateWithRisks,
	})

	if estimateVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintEstimate(&estimate)
	}

	output := estimateOutput{ProjectEstimate: estimate}
	bufferPct := estimateBuffer
	if bufferPct == 0 {
		bufferPct = cfg.BufferPercentage
	}
	if bufferPct != 0 {
		timeOpts := &estimation.TimeOptions{Requirements: requirements}
		if useHistory {
			timeOpts.HistoricalData = engine.HistoricalData()
		}
		buffered := engine.GenerateTimeEstimateWithBuffer(estimate.Complexity, bufferPct, timeOpts)
		output.Buffer = &buffered
	}

	return writeOutput(estimateOutputFile, output, schemas.EstimateSchema)
}

// estimateOutput flattens the estimate artifact and attaches the
// optional contingency buffer alongside it.
type estimateOutput struct {
	types.ProjectEstimate
	Buffer *types.BufferedTimeEstimate `json:"buffer,omitempty"`
}
