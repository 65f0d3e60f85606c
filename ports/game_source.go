package ports

import (
	"context"

	"wolfboard/domain/game"
)

// GameSource yields finalized game records for scoring, in deterministic
// order. Sources own validation of their own transport format only; the
// engine revalidates every record before scoring.
type GameSource interface {
	ListGames(ctx context.Context) ([]*game.GameRecord, error)
}
