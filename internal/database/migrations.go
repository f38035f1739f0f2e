package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the database schema.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS owners (
			id TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL REFERENCES owners(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_owner_id ON sessions(owner_id)`,

		`CREATE TABLE IF NOT EXISTS fixed_parameters (
			owner_id TEXT PRIMARY KEY REFERENCES owners(id),
			total_budget BIGINT NOT NULL DEFAULT 0,
			platinum_ticket BIGINT NOT NULL DEFAULT 0,
			pending_platinum BIGINT NOT NULL DEFAULT 0,
			flight_total BIGINT NOT NULL DEFAULT 0,
			my_flight_share BIGINT NOT NULL DEFAULT 0,
			stay BIGINT NOT NULL DEFAULT 0,
			expected_incoming BIGINT NOT NULL DEFAULT 0,
			base_savings BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Entry ids are caller-supplied and must be unique per owner across
		// every entry kind, so each append claims its id here first.
		`CREATE TABLE IF NOT EXISTS ledger_ids (
			owner_id TEXT NOT NULL REFERENCES owners(id),
			entry_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			PRIMARY KEY (owner_id, entry_id)
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			entry_id TEXT NOT NULL,
			owner_id TEXT NOT NULL REFERENCES owners(id),
			title TEXT NOT NULL,
			amount BIGINT NOT NULL,
			category TEXT NOT NULL,
			account TEXT NOT NULL,
			spent_on DATE NOT NULL,
			spent_at TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (owner_id, entry_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_owner_id ON expenses(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_created_at ON expenses(created_at)`,

		`CREATE TABLE IF NOT EXISTS incomes (
			id SERIAL PRIMARY KEY,
			entry_id TEXT NOT NULL,
			owner_id TEXT NOT NULL REFERENCES owners(id),
			title TEXT NOT NULL,
			amount BIGINT NOT NULL,
			category TEXT NOT NULL,
			account TEXT NOT NULL,
			received_on DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (owner_id, entry_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_incomes_owner_id ON incomes(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_incomes_created_at ON incomes(created_at)`,

		`CREATE TABLE IF NOT EXISTS places (
			id SERIAL PRIMARY KEY,
			entry_id TEXT NOT NULL,
			owner_id TEXT NOT NULL REFERENCES owners(id),
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (owner_id, entry_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_places_owner_id ON places(owner_id)`,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
