package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetoza/resume-analyzer/internal/ingestion"
)

var recommendTopK int

var recommendCmd = &cobra.Command{
	Use:   "recommend <resume-file>",
	Short: "Recommend target roles for a resume",
	Long:  `Parse a resume and rank the built-in role profiles by embedding similarity. Requires a Gemini API key.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recommendTopK, "top", 3, "Number of roles to return")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, _, _, recommender := buildServices(cfg)
	if recommender == nil {
		return fmt.Errorf("GEMINI_API_KEY is required for role recommendation")
	}

	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return err
	}

	roles, err := recommender.Recommend(cmd.Context(), text, recommendTopK)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"recommended_roles": roles})
}
