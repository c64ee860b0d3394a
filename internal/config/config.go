// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/meetoza/resume-analyzer/internal/scoring"
)

// Config represents the analyzer configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or
// environment variables.
type Config struct {
	Port           int    `json:"port,omitempty"`            // HTTP listen port
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Scoring overrides the default weights and thresholds when present.
	Scoring *scoring.Config `json:"scoring,omitempty"`
}

// DefaultPort is used when neither the config file nor PORT sets one.
const DefaultPort = 8000

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

// FromEnv fills unset fields from environment variables: PORT and
// GEMINI_API_KEY.
func (c *Config) FromEnv() {
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
			c.Port = port
		}
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if s := c.Scoring; s != nil {
		if s.MustHaveWeight < 0 || s.GoodToHaveWeight < 0 {
			return fmt.Errorf("config error: tier weights must be non-negative")
		}
		if s.SemanticThreshold < 0 || s.SemanticThreshold > 1 {
			return fmt.Errorf("config error: 'semantic_threshold' must be in [0,1]")
		}
		if s.MissingPenaltyThreshold < 0 || s.MissingPenaltyThreshold > 1 {
			return fmt.Errorf("config error: 'missing_penalty_threshold' must be in [0,1]")
		}
	}
	return nil
}

// ScoringConfig returns the configured scoring weights or the defaults.
func (c *Config) ScoringConfig() scoring.Config {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return scoring.DefaultConfig()
}

// ListenPort returns the configured port or the default.
func (c *Config) ListenPort() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultPort
}
