package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meetoza/resume-analyzer/internal/ingestion"
)

var (
	scoreJDPath string
	scoreJDURL  string
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume-file>",
	Short: "Score a resume against a job description",
	Long:  `Parse a resume and score it against a job description supplied as a text file (--jd) or fetched from a posting URL (--jd-url).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreJDPath, "jd", "", "Path to job description text file")
	scoreCmd.Flags().StringVar(&scoreJDURL, "jd-url", "", "URL of the job posting")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if scoreJDPath == "" && scoreJDURL == "" {
		return fmt.Errorf("either --jd or --jd-url is required")
	}
	if scoreJDPath != "" && scoreJDURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return err
	}

	var jdText string
	if scoreJDPath != "" {
		content, err := os.ReadFile(scoreJDPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jdText = ingestion.CleanText(string(content))
	} else {
		jdText, err = ingestion.FromURL(cmd.Context(), scoreJDURL)
		if err != nil {
			return err
		}
	}

	parser, jdParser, scorer, _ := buildServices(cfg)
	parsed := parser.Parse(text)
	skillSet := jdParser.Parse(jdText)
	result := scorer.Score(cmd.Context(), parsed.Skills, skillSet, parsed.Sentences)

	return printJSON(map[string]any{
		"result":    result,
		"jd_skills": skillSet,
	})
}
