package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a resume",
	Long:  "Extract a profile from a resume and print the best matching job postings with per-factor scores.",
	RunE:  runMatch,
}

var (
	matchInputFile string
	matchTopN      int
	matchLanguage  string
	matchJSON      bool
	matchCatalog   catalogFlags
)

func init() {
	matchCmd.Flags().StringVarP(&matchInputFile, "in", "i", "", "Path to resume file (required)")
	matchCmd.Flags().IntVar(&matchTopN, "top", 0, "Number of matches to show (default from config, 5)")
	matchCmd.Flags().StringVar(&matchLanguage, "lang", "", "Resume language: en or ar (default from config)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCatalog.register(matchCmd)

	_ = matchCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	matcher, err := newMatcher(cmd.Context(), matchCatalog, matchLanguage, matchTopN)
	if err != nil {
		return err
	}

	result, err := matcher.Run(cmd.Context(), matchInputFile)
	if err != nil {
		return err
	}

	if matchJSON {
		return writeJSON(cmd.OutOrStdout(), "", result)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if verbose {
		printer.PrintProfile(result.Profile)
	}
	return printer.PrintMatches(result.Matches)
}
