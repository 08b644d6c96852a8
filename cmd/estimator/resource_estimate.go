package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/spf13/cobra"
)

var resourceEstimateCmd = &cobra.Command{
	Use:   "resource-estimate",
	Short: "Generate an estimate allocated across a team configuration",
	Long:  "Split estimated work across senior, mid-level, and junior developers based on complexity and price it with per-tier rates.",
	RunE:  runResourceEstimate,
}

var (
	resourceInputFile  string
	resourceTeamFile   string
	resourceOutputFile string
	resourceConfigFile string
	resourceAPIKey     string
)

func init() {
	resourceEstimateCmd.Flags().StringVarP(&resourceInputFile, "in", "i", "", "Path to requirements JSON file (required)")
	resourceEstimateCmd.Flags().StringVarP(&resourceTeamFile, "team", "t", "", "Path to team configuration JSON file (required)")
	resourceEstimateCmd.Flags().StringVarP(&resourceOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	resourceEstimateCmd.Flags().StringVarP(&resourceConfigFile, "config", "c", "", "Path to config JSON file")
	resourceEstimateCmd.Flags().StringVar(&resourceAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = resourceEstimateCmd.MarkFlagRequired("in")
	_ = resourceEstimateCmd.MarkFlagRequired("team")

	rootCmd.AddCommand(resourceEstimateCmd)
}

func runResourceEstimate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadCLIConfig(resourceConfigFile)
	if err != nil {
		return err
	}

	requirements, err := loadRequirements(resourceInputFile)
	if err != nil {
		return err
	}

	teamData, err := os.ReadFile(resourceTeamFile)
	if err != nil {
		return fmt.Errorf("failed to read team file: %w", err)
	}
	var team types.TeamConfiguration
	if err := json.Unmarshal(teamData, &team); err != nil {
		return fmt.Errorf("failed to parse team JSON: %w", err)
	}

	engine, cleanup, err := buildEngine(ctx, cfg, resourceAPIKey)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := engine.GenerateResourceBasedEstimate(ctx, requirements, team, nil)
	if err != nil {
		return err
	}

	return writeOutput(resourceOutputFile, result, "")
}
