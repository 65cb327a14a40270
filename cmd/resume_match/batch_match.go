package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ingestion"
)

var batchMatchCmd = &cobra.Command{
	Use:   "batch-match",
	Short: "Match every resume in a directory",
	Long:  "Rank the job catalog against each supported resume file in a directory and write all results to one JSON file.",
	RunE:  runBatchMatch,
}

var (
	batchDir         string
	batchOutputFile  string
	batchConcurrency int
	batchTopN        int
	batchCatalog     catalogFlags
)

func init() {
	batchMatchCmd.Flags().StringVar(&batchDir, "dir", "", "Directory of resume files (required)")
	batchMatchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (required)")
	batchMatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Documents processed in parallel (default from config, 4)")
	batchMatchCmd.Flags().IntVar(&batchTopN, "top", 0, "Number of matches per resume (default from config, 5)")
	batchCatalog.register(batchMatchCmd)

	_ = batchMatchCmd.MarkFlagRequired("dir")
	_ = batchMatchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(batchMatchCmd)
}

func runBatchMatch(cmd *cobra.Command, _ []string) error {
	paths, err := listDocuments(batchDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported resume files in %s", batchDir)
	}

	matcher, err := newMatcher(cmd.Context(), batchCatalog, "", batchTopN)
	if err != nil {
		return err
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = appConfig.Concurrency
	}

	results, err := matcher.RunBatch(cmd.Context(), paths, concurrency)
	if err != nil {
		return err
	}

	if err := writeJSON(cmd.OutOrStdout(), batchOutputFile, results); err != nil {
		return err
	}
	appLogger.Info("batch results written", zap.String("out", batchOutputFile), zap.Int("documents", len(results)))
	fmt.Fprintf(cmd.OutOrStdout(), "Matched %d resumes, results written to %s\n", len(results), batchOutputFile)
	return nil
}

// listDocuments returns the supported files directly inside dir, sorted by name.
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := ingestion.DetectFormat(path); err != nil {
			appLogger.Debug("skipping unsupported file", zap.String("path", path))
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}
