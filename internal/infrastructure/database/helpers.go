package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schema is applied in order on startup. Every statement is idempotent.
// gen_random_uuid() is built in from PostgreSQL 13.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name         TEXT NOT NULL,
		phone_number TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ,
		CONSTRAINT authors_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		summary    TEXT NOT NULL,
		category   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_authors_created_at ON authors (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_category_created_at ON posts (category, created_at DESC)`,
}

// Migrate creates the tables and constraints the repositories rely on
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for i, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}

	log.Info().Str("component", "database").Int("statements", len(schema)).Msg("Schema is up to date")
	return nil
}
