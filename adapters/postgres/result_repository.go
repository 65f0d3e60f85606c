package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	goerrors "errors"
	"fmt"

	"wolfboard/domain/core"
	"wolfboard/domain/game"
	"wolfboard/domain/scoring"
	"wolfboard/internal/errors"
	"wolfboard/ports"

	"github.com/jmoiron/sqlx"
)

// ResultRepositoryImpl implements ResultLedger for PostgreSQL
type ResultRepositoryImpl struct {
	db *sqlx.DB
}

// NewResultRepository creates a new PostgreSQL result ledger
func NewResultRepository(db *sqlx.DB) ports.ResultLedger {
	return &ResultRepositoryImpl{db: db}
}

// AppendResult appends one GameResult. Results are append-only; a second
// insert for the same game fails.
func (r *ResultRepositoryImpl) AppendResult(ctx context.Context, result *scoring.GameResult) error {
	playersJSON, err := json.Marshal(result.Players)
	if err != nil {
		return errors.Wrap(err, "marshaling player records")
	}
	updatesJSON, err := json.Marshal(result.RatingUpdates)
	if err != nil {
		return errors.Wrap(err, "marshaling rating updates")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO game_results (
			game_id, result_id, winner, fingerprint, scored_at,
			players, rating_updates
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.GameID.String(), result.ResultID.String(), string(result.Winner),
		result.Fingerprint.String(), result.ScoredAt.Time(),
		playersJSON, updatesJSON)
	if err != nil {
		return errors.Wrapf(err, "appending result for game %s", result.GameID)
	}
	return nil
}

// IsScored reports whether the game is already in the ledger
func (r *ResultRepositoryImpl) IsScored(ctx context.Context, gameID core.GameID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM game_results WHERE game_id = $1)`,
		gameID.String()).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "checking scored state")
	}
	return exists, nil
}

// GetResult retrieves one game's result
func (r *ResultRepositoryImpl) GetResult(ctx context.Context, gameID core.GameID) (*scoring.GameResult, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT game_id, result_id, winner, fingerprint, scored_at, players, rating_updates
		FROM game_results
		WHERE game_id = $1`, gameID.String())

	result, err := scanResult(row)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("game result", gameID.String())
	}
	return result, err
}

// ListResults retrieves stored results ordered by scoring time
func (r *ResultRepositoryImpl) ListResults(ctx context.Context, filters ports.ResultFilters) ([]*scoring.GameResult, error) {
	query := `
		SELECT game_id, result_id, winner, fingerprint, scored_at, players, rating_updates
		FROM game_results`
	args := []interface{}{}
	if filters.Winner != nil {
		query += ` WHERE winner = $1`
		args = append(args, *filters.Winner)
	}
	query += ` ORDER BY scored_at ASC`
	if filters.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filters.Limit)
	}
	if filters.Offset > 0 {
		query += fmt.Sprintf(` OFFSET %d`, filters.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing results")
	}
	defer rows.Close()

	var results []*scoring.GameResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// ResultsForAgent retrieves every result the agent participated in
func (r *ResultRepositoryImpl) ResultsForAgent(ctx context.Context, agentID core.AgentID) ([]*scoring.GameResult, error) {
	match, err := json.Marshal([]map[string]string{{"agent_id": agentID.String()}})
	if err != nil {
		return nil, errors.Wrap(err, "building agent filter")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT game_id, result_id, winner, fingerprint, scored_at, players, rating_updates
		FROM game_results
		WHERE players @> $1
		ORDER BY scored_at ASC`, match)
	if err != nil {
		return nil, errors.Wrapf(err, "listing results for agent %s", agentID)
	}
	defer rows.Close()

	var results []*scoring.GameResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResult(row rowScanner) (*scoring.GameResult, error) {
	var result scoring.GameResult
	var gameID, resultID, winner, fingerprint string
	var playersJSON, updatesJSON []byte
	var scoredAt sql.NullTime

	err := row.Scan(&gameID, &resultID, &winner, &fingerprint, &scoredAt,
		&playersJSON, &updatesJSON)
	if err != nil {
		return nil, err
	}

	result.GameID = core.GameID(gameID)
	result.ResultID = core.ResultID(resultID)
	result.Winner = game.Team(winner)
	result.Fingerprint = core.Hash(fingerprint)
	if scoredAt.Valid {
		result.ScoredAt = core.NewTimestamp(scoredAt.Time)
	}
	if err := json.Unmarshal(playersJSON, &result.Players); err != nil {
		return nil, errors.Wrap(err, "unmarshaling player records")
	}
	if err := json.Unmarshal(updatesJSON, &result.RatingUpdates); err != nil {
		return nil, errors.Wrap(err, "unmarshaling rating updates")
	}
	return &result, nil
}
