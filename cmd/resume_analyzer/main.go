// Package main provides the entry point for the Resume Analyzer CLI and
// HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/meetoza/resume-analyzer/internal/config"
	"github.com/meetoza/resume-analyzer/internal/embedding"
	"github.com/meetoza/resume-analyzer/internal/jd"
	"github.com/meetoza/resume-analyzer/internal/recommend"
	"github.com/meetoza/resume-analyzer/internal/resume"
	"github.com/meetoza/resume-analyzer/internal/scoring"
)

var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume Analyzer CLI and HTTP API Server",
	Long:  "Resume Analyzer extracts structured facts from resumes and scores them against job descriptions using tiered keyword matching and embedding similarity.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and merges environment
// variables over it.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildServices wires the parser, scorer and recommender from config. The
// embedding provider is lazy, so constructing services never touches the
// network; a missing API key just means semantic scoring is disabled.
func buildServices(cfg *config.Config) (*resume.Parser, *jd.Parser, *scoring.Scorer, *recommend.Recommender) {
	var provider embedding.Provider
	if apiKey := cfg.APIKey; apiKey != "" {
		model := cfg.EmbeddingModel
		provider = embedding.NewLazy(func(ctx context.Context) (embedding.Provider, error) {
			return embedding.NewGeminiProvider(ctx, apiKey, model)
		})
	}

	parser := resume.NewParser()
	jdParser := jd.NewParser()
	scorer := scoring.NewScorer(cfg.ScoringConfig(), provider)

	var recommender *recommend.Recommender
	if provider != nil {
		recommender = recommend.NewRecommender(provider, nil)
	}
	return parser, jdParser, scorer, recommender
}
