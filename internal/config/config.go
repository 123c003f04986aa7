// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration. Values come from an optional JSON
// file, the environment, and CLI flags, in that order of increasing
// precedence. The API key is never embedded in source: it is resolved once at
// process start from the config file or GEMINI_API_KEY.
type Config struct {
	APIKey       string  `json:"api_key,omitempty" validate:"required"`
	Model        string  `json:"model,omitempty"`
	RoundingMode string  `json:"rounding_mode,omitempty" validate:"omitempty,oneof=round floor"`
	MaxChars     int     `json:"max_chars,omitempty" validate:"omitempty,gt=0"`
	MaxRetries   int     `json:"max_retries,omitempty" validate:"omitempty,gte=0,lte=5"`
	TimeoutSecs  float64 `json:"timeout_secs,omitempty" validate:"omitempty,gt=0"`
	Concurrency  int     `json:"concurrency,omitempty" validate:"omitempty,gte=1,lte=32"`
	Verbose      bool    `json:"verbose,omitempty"`
}

// DefaultConfig returns the defaults applied for unset fields.
func DefaultConfig() Config {
	return Config{
		RoundingMode: "round",
		MaxChars:     15000,
		MaxRetries:   2,
		TimeoutSecs:  30,
		Concurrency:  4,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv fills unset fields from the environment. Call after godotenv has
// loaded any .env file.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = os.Getenv("GEMINI_MODEL")
	}
}

// MergeWithDefaults returns a copy with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.RoundingMode == "" {
		result.RoundingMode = defaults.RoundingMode
	}
	if result.MaxChars == 0 {
		result.MaxChars = defaults.MaxChars
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.TimeoutSecs == 0 {
		result.TimeoutSecs = defaults.TimeoutSecs
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			if first.Field() == "APIKey" {
				return fmt.Errorf("config error: API key is required (set GEMINI_API_KEY or api_key in the config file)")
			}
			return fmt.Errorf("config error: field %s failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
