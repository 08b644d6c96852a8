package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/project-estimator/internal/observability"
	"github.com/jonathan/project-estimator/internal/risk"
	"github.com/jonathan/project-estimator/internal/types"
	"github.com/spf13/cobra"
)

var assessRisksCmd = &cobra.Command{
	Use:   "assess-risks",
	Short: "Run a standalone risk assessment over a requirements file",
	RunE:  runAssessRisks,
}

var (
	risksInputFile   string
	risksOutputFile  string
	risksMetricsFile string
	risksVerbose     bool
)

func init() {
	assessRisksCmd.Flags().StringVarP(&risksInputFile, "in", "i", "", "Path to requirements JSON file (required)")
	assessRisksCmd.Flags().StringVarP(&risksOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	assessRisksCmd.Flags().StringVar(&risksMetricsFile, "metrics", "", "Path to codebase metrics JSON file")
	assessRisksCmd.Flags().BoolVarP(&risksVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	_ = assessRisksCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(assessRisksCmd)
}

func runAssessRisks(_ *cobra.Command, _ []string) error {
	requirements, err := loadRequirements(risksInputFile)
	if err != nil {
		return err
	}

	var metrics *types.CodebaseMetrics
	if risksMetricsFile != "" {
		data, err := os.ReadFile(risksMetricsFile)
		if err != nil {
			return fmt.Errorf("failed to read metrics file: %w", err)
		}
		metrics = &types.CodebaseMetrics{}
		if err := json.Unmarshal(data, metrics); err != nil {
			return fmt.Errorf("failed to parse metrics JSON: %w", err)
		}
	}

	assessment := risk.NewAnalyzer().AssessRisks(requirements, metrics)

	if risksVerbose {
		observability.NewPrinter(os.Stderr).PrintRiskAssessment(&assessment)
	}

	return writeOutput(risksOutputFile, assessment, "")
}
