package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/project-estimator/internal/db"
	"github.com/jonathan/project-estimator/internal/types"
	"github.com/spf13/cobra"
)

var recordProjectCmd = &cobra.Command{
	Use:   "record-project",
	Short: "Store a completed project outcome in the history database",
	Long:  "Record actual and estimated hours for a finished project so future estimates can be calibrated against it.",
	RunE:  runRecordProject,
}

var (
	recordInputFile   string
	recordConfigFile  string
	recordDatabaseURL string
)

func init() {
	recordProjectCmd.Flags().StringVarP(&recordInputFile, "in", "i", "", "Path to completed project JSON file (required)")
	recordProjectCmd.Flags().StringVarP(&recordConfigFile, "config", "c", "", "Path to config JSON file")
	recordProjectCmd.Flags().StringVar(&recordDatabaseURL, "database-url", "", "Postgres connection string (overrides config and DATABASE_URL env var)")
	_ = recordProjectCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(recordProjectCmd)
}

func runRecordProject(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadCLIConfig(recordConfigFile)
	if err != nil {
		return err
	}

	databaseURL := recordDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("no database configured: set --database-url, database_url in config, or DATABASE_URL")
	}

	data, err := os.ReadFile(recordInputFile)
	if err != nil {
		return fmt.Errorf("failed to read project file: %w", err)
	}

	var project types.ProjectData
	if err := json.Unmarshal(data, &project); err != nil {
		return fmt.Errorf("failed to parse project JSON: %w", err)
	}
	if project.ID == "" || project.ActualHours <= 0 {
		return fmt.Errorf("project must have an id and positive actual hours")
	}
	if project.CompletedAt.IsZero() {
		project.CompletedAt = time.Now().UTC()
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	rowID, err := store.SaveProject(ctx, project)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded project %s (row %s)\n", project.ID, rowID)
	return nil
}
