package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/types"
)

// CatalogTable is the table LoadCatalogPostings reads from.
const CatalogTable = "job_catalog"

// CatalogSchema creates the catalog table. Rows are ranked in position order.
const CatalogSchema = `CREATE TABLE IF NOT EXISTS job_catalog (
	id               SERIAL PRIMARY KEY,
	position         INTEGER NOT NULL DEFAULT 0,
	title            TEXT NOT NULL,
	company          TEXT NOT NULL,
	location         TEXT,
	salary_range     TEXT,
	experience_range TEXT,
	description      TEXT,
	requirements     TEXT,
	job_type         TEXT,
	industry         TEXT NOT NULL
)`

const selectCatalogPostings = `SELECT title, company, location, salary_range, experience_range,
        description, requirements, job_type, industry
 FROM job_catalog
 ORDER BY position, id`

// LoadCatalogPostings reads every catalog row in ranking order.
func (db *DB) LoadCatalogPostings(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx, selectCatalogPostings)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog postings: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[CatalogRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog postings: %w", err)
	}

	postings := make([]types.JobPosting, 0, len(records))
	for _, r := range records {
		postings = append(postings, r.ToPosting())
	}
	return postings, nil
}

// LoadCatalog reads, validates and cleans the catalog rows and builds an
// immutable Catalog from them.
func (db *DB) LoadCatalog(ctx context.Context, log *zap.Logger) (*catalog.Catalog, error) {
	log = logger.OrNop(log)

	postings, err := db.LoadCatalogPostings(ctx)
	if err != nil {
		return nil, err
	}

	for i := range postings {
		if err := catalog.Prepare(&postings[i]); err != nil {
			return nil, fmt.Errorf("catalog row %d is invalid: %w", i, err)
		}
	}

	log.Info("loaded catalog from database",
		zap.String(logger.FieldSource, CatalogTable),
		zap.Int("postings", len(postings)),
	)
	return catalog.New(postings), nil
}
