package main

import (
	"context"
	"fmt"

	"github.com/jonathan/project-estimator/internal/types"
	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Generate optimistic, realistic and pessimistic estimates",
	RunE:  runScenarios,
}

var (
	scenariosInputFile  string
	scenariosOutputFile string
	scenariosConfigFile string
	scenariosAPIKey     string
	scenariosNames      []string
)

func init() {
	scenariosCmd.Flags().StringVarP(&scenariosInputFile, "in", "i", "", "Path to requirements JSON file (required)")
	scenariosCmd.Flags().StringVarP(&scenariosOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scenariosCmd.Flags().StringVarP(&scenariosConfigFile, "config", "c", "", "Path to config JSON file")
	scenariosCmd.Flags().StringVar(&scenariosAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scenariosCmd.Flags().StringSliceVar(&scenariosNames, "names", []string{"optimistic", "realistic", "pessimistic"}, "Scenario names to generate")
	_ = scenariosCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadCLIConfig(scenariosConfigFile)
	if err != nil {
		return err
	}

	requirements, err := loadRequirements(scenariosInputFile)
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(ctx, cfg, scenariosAPIKey)
	if err != nil {
		return err
	}
	defer cleanup()

	names := make([]types.ScenarioName, len(scenariosNames))
	for i, n := range scenariosNames {
		names[i] = types.ScenarioName(n)
	}

	scenarios := engine.GenerateScenarios(ctx, requirements, names, nil)
	if len(scenarios) == 0 {
		return fmt.Errorf("no known scenario names in %v", scenariosNames)
	}

	return writeOutput(scenariosOutputFile, scenarios, "")
}
