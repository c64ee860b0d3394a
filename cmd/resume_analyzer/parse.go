package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meetoza/resume-analyzer/internal/ingestion"
	"github.com/meetoza/resume-analyzer/internal/resume"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Extract structured data from a resume",
	Long:  `Parse a resume document (.pdf or .txt) and print the extracted name, contact details, skills, education and experience as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return err
	}

	parsed := resume.NewParser().Parse(text)
	return printJSON(parsed)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
