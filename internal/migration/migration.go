package migration

import (
	"context"

	"wolfboard/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createAgentRatingsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create agent_ratings table")
	}

	if err := r.createGameResultsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create game_results table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createAgentRatingsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS agent_ratings (
			agent_id VARCHAR(255) NOT NULL,
			role_class VARCHAR(50) NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 1000,
			games_played INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (agent_id, role_class)
		)
	`)
	return err
}

func (r *MigrationRunner) createGameResultsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS game_results (
			game_id VARCHAR(255) PRIMARY KEY,
			result_id UUID NOT NULL,
			winner VARCHAR(50) NOT NULL,
			fingerprint VARCHAR(64) NOT NULL,
			scored_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			players JSONB NOT NULL,
			rating_updates JSONB NOT NULL
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_game_results_scored_at ON game_results(scored_at)`,
		`CREATE INDEX IF NOT EXISTS idx_game_results_winner ON game_results(winner)`,
		`CREATE INDEX IF NOT EXISTS idx_game_results_players ON game_results USING GIN (players)`,
		`CREATE INDEX IF NOT EXISTS idx_agent_ratings_rating ON agent_ratings(rating DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
