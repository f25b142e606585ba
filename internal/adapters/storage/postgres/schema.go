package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations se aplican en orden; todas son idempotentes.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS breeds (
		id              TEXT PRIMARY KEY,
		position        INTEGER NOT NULL,
		name            TEXT NOT NULL,
		animal          TEXT NOT NULL,
		origin          TEXT NOT NULL DEFAULT '',
		characteristics JSONB NOT NULL DEFAULT '[]',
		milk_yield      TEXT NOT NULL DEFAULT '',
		climate         TEXT NOT NULL DEFAULT '',
		care            JSONB NOT NULL DEFAULT '[]',
		image           TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS breeds_position_idx ON breeds (position)`,
	`CREATE TABLE IF NOT EXISTS breeders (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL,
		location    TEXT NOT NULL,
		distance    TEXT NOT NULL DEFAULT '',
		specialties JSONB NOT NULL DEFAULT '[]',
		rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
		phone       TEXT NOT NULL DEFAULT '',
		verified    BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL DEFAULT '',
		subject     TEXT NOT NULL,
		message     TEXT NOT NULL,
		received_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS contact_submissions_received_idx ON contact_submissions (received_at DESC)`,
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
