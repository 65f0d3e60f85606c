package postgres

import (
	"context"

	"wolfboard/domain/core"
	"wolfboard/domain/scoring"
	"wolfboard/internal/errors"
	"wolfboard/ports"

	"github.com/jmoiron/sqlx"
)

// RatingRepositoryImpl implements RatingRepository for PostgreSQL
type RatingRepositoryImpl struct {
	db *sqlx.DB
}

// NewRatingRepository creates a new PostgreSQL rating repository
func NewRatingRepository(db *sqlx.DB) ports.RatingRepository {
	return &RatingRepositoryImpl{db: db}
}

type ratingRow struct {
	AgentID   string  `db:"agent_id"`
	RoleClass string  `db:"role_class"`
	Rating    float64 `db:"rating"`
}

// SnapshotFor loads the current ratings of the given agents across all role
// classes. Agents without stored rows resolve to the initial rating through
// the snapshot's default.
func (r *RatingRepositoryImpl) SnapshotFor(ctx context.Context, agents []core.AgentID) (scoring.RatingSnapshot, error) {
	snapshot := make(scoring.RatingSnapshot, len(agents))
	if len(agents) == 0 {
		return snapshot, nil
	}

	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = a.String()
	}
	query, args, err := sqlx.In(`
		SELECT agent_id, role_class, rating
		FROM agent_ratings
		WHERE agent_id IN (?)`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "building rating snapshot query")
	}

	var rows []ratingRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "loading rating snapshot")
	}
	for _, row := range rows {
		snapshot.Set(core.AgentID(row.AgentID), scoring.RoleClass(row.RoleClass), row.Rating)
	}
	return snapshot, nil
}

// AllRatings loads every stored agent's pool ratings
func (r *RatingRepositoryImpl) AllRatings(ctx context.Context) (scoring.RatingSnapshot, error) {
	var rows []ratingRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT agent_id, role_class, rating FROM agent_ratings`); err != nil {
		return nil, errors.Wrap(err, "loading all ratings")
	}
	snapshot := make(scoring.RatingSnapshot)
	for _, row := range rows {
		snapshot.Set(core.AgentID(row.AgentID), scoring.RoleClass(row.RoleClass), row.Rating)
	}
	return snapshot, nil
}

// ApplyUpdates applies a game's delta set in one transaction, so a game
// either adjusts every participant's pool or none
func (r *RatingRepositoryImpl) ApplyUpdates(ctx context.Context, updates []scoring.RatingUpdate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning rating update transaction")
	}
	defer tx.Rollback()

	for _, u := range updates {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO agent_ratings (agent_id, role_class, rating, games_played, updated_at)
			VALUES ($1, $2, $3, 1, NOW())
			ON CONFLICT (agent_id, role_class) DO UPDATE SET
				rating = EXCLUDED.rating,
				games_played = agent_ratings.games_played + 1,
				updated_at = NOW()`,
			u.AgentID.String(), string(u.Class), u.After)
		if err != nil {
			return errors.Wrapf(err, "updating rating for agent %s", u.AgentID)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing rating updates")
	}
	return nil
}
