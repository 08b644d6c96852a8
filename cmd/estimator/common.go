package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/project-estimator/internal/config"
	"github.com/jonathan/project-estimator/internal/db"
	"github.com/jonathan/project-estimator/internal/estimation"
	"github.com/jonathan/project-estimator/internal/llm"
	"github.com/jonathan/project-estimator/internal/schemas"
	"github.com/jonathan/project-estimator/internal/types"
)

const defaultHistoryLimit = 100

// loadRequirements reads a requirements JSON file, validates it against
// the requirements schema when the schema file can be found, and
// unmarshals it.
func loadRequirements(path string) ([]types.Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.RequirementsSchema); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return nil, fmt.Errorf("requirements do not validate against schema: %w", err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Warning: requirements schema not found, skipping validation\n")
	}

	var requirements []types.Requirement
	if err := json.Unmarshal(data, &requirements); err != nil {
		return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
	}

	for i := range requirements {
		if err := requirements[i].Validate(); err != nil {
			return nil, fmt.Errorf("requirement %q is invalid: %w", requirements[i].ID, err)
		}
	}

	return requirements, nil
}

// loadCLIConfig merges the optional config file with defaults.
func loadCLIConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine assembles an estimation engine from the CLI
// configuration: scoring client (when an API key is available), rates,
// and historical data loaded from the database when configured.
func buildEngine(ctx context.Context, cfg *config.Config, apiKeyFlag string) (*estimation.Engine, func(), error) {
	cleanup := func() {}

	apiKey := apiKeyFlag
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create scoring client: %w", err)
		}
		cleanup = func() { _ = client.Close() }
	} else {
		fmt.Fprintf(os.Stderr, "Warning: no API key configured, using heuristic-only scoring\n")
	}

	engine := estimation.NewEngine(client)
	if err := engine.SetRateConfiguration(cfg.Rates()); err != nil {
		cleanup()
		return nil, func() {}, err
	}

	if cfg.DatabaseURL != "" {
		if err := loadHistory(ctx, engine, cfg); err != nil {
			cleanup()
			return nil, func() {}, err
		}
	}

	return engine, cleanup, nil
}

// loadHistory seeds the engine's ledger from the project history store.
func loadHistory(ctx context.Context, engine *estimation.Engine, cfg *config.Config) error {
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	projects, err := store.RecentProjects(ctx, limit)
	if err != nil {
		return err
	}
	for _, p := range projects {
		engine.AddHistoricalProject(p)
	}
	return nil
}

// writeOutput marshals a result to the output file, or stdout when the
// path is empty. Estimate artifacts are checked against their schema
// before being written.
func writeOutput(path string, result any, schemaName string) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if schemaName != "" {
		if schemaPath := schemas.ResolveSchemaPath(schemaName); schemaPath != "" {
			if err := schemas.ValidateDocument(schemaPath, jsonBytes); err != nil {
				return fmt.Errorf("generated output does not validate against schema: %w", err)
			}
		}
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
