package database

import (
	"context"
	"database/sql"

	"github.com/rawisara/villaboard/internal/models"
)

// runMigrations creates the schema and seeds required defaults.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS people (
			id TEXT PRIMARY KEY,
			fullname TEXT NOT NULL,
			preferred_name TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS categories (
			name TEXT PRIMARY KEY,
			color TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS allocations (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			guest_name TEXT NOT NULL DEFAULT '',
			villa TEXT NOT NULL DEFAULT '',
			arrival TEXT NOT NULL,
			departure TEXT NOT NULL,
			category TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			assigned_to TEXT REFERENCES people(id) ON DELETE SET NULL,
			lane INTEGER,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Range loads filter on status plus the arrival/departure window.
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_allocations_status_arrival
		ON allocations(status, arrival)
	`)
	if err != nil {
		return err
	}

	return seedFallbackCategory(ctx, db)
}

// seedFallbackCategory guarantees the color map always resolves something.
func seedFallbackCategory(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO categories (name, color) VALUES (?, ?)
		 ON CONFLICT(name) DO NOTHING`,
		models.FallbackCategory, models.FallbackColor,
	)
	return err
}
