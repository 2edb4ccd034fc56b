package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// migrations are applied in order and are idempotent. Schema versioning
// stays deliberately simple: one statement list, IF NOT EXISTS guards.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		preferred_difficulty TEXT NOT NULL DEFAULT 'básico',
		anxiety_level INTEGER NOT NULL DEFAULT 5,
		created_at TIMESTAMPTZ NOT NULL,
		last_login TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		difficulty_levels JSONB NOT NULL DEFAULT '[]',
		sample_questions JSONB NOT NULL DEFAULT '[]',
		interviewer_avatars JSONB NOT NULL DEFAULT '[]',
		environments JSONB NOT NULL DEFAULT '[]',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users (id),
		scenario_id TEXT NOT NULL REFERENCES scenarios (id),
		difficulty_level TEXT NOT NULL,
		interviewer_avatar TEXT NOT NULL DEFAULT 'profesional',
		environment TEXT NOT NULL DEFAULT 'oficina',
		custom_description TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ,
		conversation_history JSONB NOT NULL DEFAULT '[]',
		performance_metrics JSONB NOT NULL DEFAULT '{}',
		version BIGINT NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_status ON sessions (user_id, status, started_at DESC)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL UNIQUE REFERENCES sessions (id),
		overall_score DOUBLE PRECISION NOT NULL,
		communication_score DOUBLE PRECISION NOT NULL,
		confidence_score DOUBLE PRECISION NOT NULL,
		technical_score DOUBLE PRECISION NOT NULL,
		strengths JSONB NOT NULL DEFAULT '[]',
		areas_for_improvement JSONB NOT NULL DEFAULT '[]',
		specific_suggestions JSONB NOT NULL DEFAULT '[]',
		avg_response_time DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_words_spoken INTEGER NOT NULL DEFAULT 0,
		hesitation_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate applies the schema to the target database.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "apply migration %d", i)
		}
	}
	return nil
}
