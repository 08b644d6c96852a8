// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/project-estimator/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Rates
	HourlyRate   float64 `json:"hourly_rate,omitempty"`   // Billing rate per hour
	Currency     string  `json:"currency,omitempty"`      // ISO 4217 currency code
	Overhead     float64 `json:"overhead,omitempty"`      // Overhead fraction (0.3 = 30%)
	ProfitMargin float64 `json:"profit_margin,omitempty"` // Profit margin fraction (0.2 = 20%)

	// Behavior
	APIKey            string  `json:"api_key,omitempty"`             // Gemini API key; empty disables LLM scoring
	BufferPercentage  float64 `json:"buffer_percentage,omitempty"`   // Default contingency buffer (0.2 = 20%)
	UseHistoricalData bool    `json:"use_historical_data,omitempty"` // Apply historical adjustment by default
	Verbose           bool    `json:"verbose,omitempty"`             // Print detailed summaries

	// Storage
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL for project history
	HistoryLimit int    `json:"history_limit,omitempty"` // Max historical projects loaded at startup
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.HourlyRate < 0 {
		return fmt.Errorf("config error: 'hourly_rate' must be non-negative")
	}
	if c.Overhead < 0 {
		return fmt.Errorf("config error: 'overhead' must be non-negative")
	}
	if c.ProfitMargin < 0 {
		return fmt.Errorf("config error: 'profit_margin' must be non-negative")
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config error: 'history_limit' must be non-negative")
	}
	if c.Currency != "" && len(c.Currency) != 3 {
		return fmt.Errorf("config error: 'currency' must be a 3-letter code")
	}
	return nil
}

// Rates converts the configuration into the engine's rate
// configuration, filling unset fields from the defaults.
func (c *Config) Rates() types.RateConfiguration {
	rates := types.DefaultRateConfiguration()
	if c.HourlyRate > 0 {
		rates.HourlyRate = c.HourlyRate
	}
	if c.Currency != "" {
		rates.Currency = c.Currency
	}
	if c.Overhead > 0 {
		rates.Overhead = c.Overhead
	}
	if c.ProfitMargin > 0 {
		rates.ProfitMargin = c.ProfitMargin
	}
	return rates
}
