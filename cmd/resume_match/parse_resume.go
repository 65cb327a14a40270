package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract a structured profile from a resume",
	Long:  "Read a text, Markdown or HTML resume and write the extracted profile as JSON.",
	RunE:  runParseResume,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseLanguage   string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (required)")
	parseResumeCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseLanguage, "lang", "", "Resume language: en or ar (default from config)")

	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	doc, err := ingestion.ReadDocument(parseInputFile)
	if err != nil {
		return err
	}

	matcher, err := newMatcher(cmd.Context(), catalogFlags{}, parseLanguage, 0)
	if err != nil {
		return err
	}
	profile := matcher.BuildProfile(doc.Text, parseLanguage)

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := schemas.ValidateProfile(data); err != nil {
		return fmt.Errorf("extracted profile failed schema validation: %w", err)
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintProfile(profile)
	}

	return writeJSON(cmd.OutOrStdout(), parseOutputFile, profile)
}
