// Package db reads job catalogs from PostgreSQL.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB holds the connection pool a job catalog is read through. The catalog
// is loaded once per process, so callers Close it right after LoadCatalog.
type DB struct {
	pool *pgxpool.Pool
}

// Connect opens and pings a pool on the catalog database at databaseURL
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("catalog database unreachable: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close releases the pool. It is safe on a zero DB.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}
