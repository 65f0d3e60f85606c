package ports

import (
	"context"

	"wolfboard/domain/core"
	"wolfboard/domain/scoring"
)

// RatingReaderPort provides read access to the externally-owned rating
// table. Unseen agents resolve to the initial rating.
type RatingReaderPort interface {
	// SnapshotFor loads the current ratings of the given agents across all
	// role classes, as one pre-game snapshot.
	SnapshotFor(ctx context.Context, agents []core.AgentID) (scoring.RatingSnapshot, error)

	// AllRatings loads every stored agent's pool ratings.
	AllRatings(ctx context.Context) (scoring.RatingSnapshot, error)
}

// RatingWriterPort applies a game's delta set. The write is all-or-nothing:
// either every update of the game lands or none does.
type RatingWriterPort interface {
	ApplyUpdates(ctx context.Context, updates []scoring.RatingUpdate) error
}

// RatingRepository combines read and write access to rating state
type RatingRepository interface {
	RatingReaderPort
	RatingWriterPort
}
