// Package config loads scraper settings from the environment.
//
// For local development a .env file in the working directory is read
// first; automation that sets real environment variables can skip it.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Extraction engines. OpenAI is preferred when both are set.
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	InstantAPIKey string `env:"INSTANTAPI_KEY"`

	// Google Sheets export.
	GoogleServiceAccountKey string `env:"GOOGLE_SERVICE_ACCOUNT_KEY"`
	GoogleSpreadsheetID     string `env:"GOOGLE_SPREADSHEET_ID"`
	GoogleSheetName         string `env:"GOOGLE_SHEET_NAME"`
}

// Load reads configuration from the environment. Unless skipDotEnv is
// set, a .env file must be present and is loaded first; refusing to
// run without one catches the common case of a missing local setup.
func Load(skipDotEnv bool) (*Config, error) {
	if !skipDotEnv {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("no .env file found; copy and modify .env.example, or pass --no-dot-env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
