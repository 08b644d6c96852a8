package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/project-estimator/internal/estimation"
	"github.com/jonathan/project-estimator/internal/observability"
	"github.com/jonathan/project-estimator/internal/types"
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Measure estimation accuracy against completed projects",
	Long:  "Compare estimated hours against actual hours for a set of completed projects and report accuracy, bias, and recommendations.",
	RunE:  runCalibrate,
}

var (
	calibrateInputFile  string
	calibrateOutputFile string
	calibrateVerbose    bool
)

func init() {
	calibrateCmd.Flags().StringVarP(&calibrateInputFile, "in", "i", "", "Path to completed projects JSON file (required)")
	calibrateCmd.Flags().StringVarP(&calibrateOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	calibrateCmd.Flags().BoolVarP(&calibrateVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	_ = calibrateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(calibrateCmd)
}

func runCalibrate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(calibrateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read projects file: %w", err)
	}

	var projects []types.ProjectData
	if err := json.Unmarshal(data, &projects); err != nil {
		return fmt.Errorf("failed to parse projects JSON: %w", err)
	}

	report := estimation.NewEngine(nil).CalibrateEstimates(projects)

	if calibrateVerbose {
		observability.NewPrinter(os.Stderr).PrintCalibration(&report)
	}

	return writeOutput(calibrateOutputFile, report, "")
}
