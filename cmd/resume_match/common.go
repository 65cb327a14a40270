package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

// catalogFlags are the catalog source overrides shared by matching and lookup commands.
type catalogFlags struct {
	path        string
	databaseURL string
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "catalog", "", "Path to a JSON job catalog (default: built-in postings)")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL URL to load the job catalog from")
}

// loadCatalog picks the catalog source: flags first, then config, then the built-in postings.
func loadCatalog(ctx context.Context, flags catalogFlags) (*catalog.Catalog, error) {
	path := flags.path
	databaseURL := flags.databaseURL
	if path == "" && databaseURL == "" {
		path = appConfig.CatalogPath
		databaseURL = appConfig.DatabaseURL
	}
	if path != "" && databaseURL != "" {
		return nil, fmt.Errorf("--catalog and --db-url are mutually exclusive")
	}

	switch {
	case path != "":
		c, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		appLogger.Info("loaded catalog from file", zap.String(logger.FieldSource, path), zap.Int("postings", c.Len()))
		return c, nil
	case databaseURL != "":
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		defer database.Close()
		return database.LoadCatalog(ctx, appLogger)
	default:
		appLogger.Debug("using built-in catalog")
		return catalog.Default(), nil
	}
}

// newMatcher builds a pipeline over the selected catalog.
func newMatcher(ctx context.Context, flags catalogFlags, lang string, topN int) (*pipeline.Matcher, error) {
	c, err := loadCatalog(ctx, flags)
	if err != nil {
		return nil, err
	}
	if lang == "" {
		lang = appConfig.Language
	}
	if topN <= 0 {
		topN = appConfig.TopN
	}
	return pipeline.New(c, pipeline.Options{
		Language:           lang,
		TopN:               topN,
		PreserveLineBreaks: appConfig.PreserveLineBreaks || preserveLines,
		Logger:             appLogger,
	}), nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
