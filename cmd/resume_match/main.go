// Package main provides the resume_match command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logger"
)

var (
	configPath    string
	verbose       bool
	jsonLogs      bool
	preserveLines bool

	// Populated by the root pre-run hook.
	appConfig config.Config
	appLogger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "resume_match",
	Short:             "Resume parser and job matcher",
	Long:              "resume_match extracts structured profiles from resume text and ranks them against a catalog of job postings.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = appLogger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress and enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&preserveLines, "preserve-lines", false, "Keep line structure during normalization")
}

// setup loads configuration and builds the logger shared by all commands.
func setup(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	cfg.ApplyEnv()
	if verbose {
		cfg.Debug = true
	}
	if jsonLogs {
		cfg.LogJSON = true
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appConfig = cfg
	appLogger = log
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
