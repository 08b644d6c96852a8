// Package main provides the entry point for the project estimation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "estimator",
	Short: "Project estimation engine",
	Long:  "Estimator converts natural-language project requirements into complexity scores, risk assessments, and time/cost estimates, optionally calibrated against historical project outcomes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
