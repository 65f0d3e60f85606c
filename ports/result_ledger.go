package ports

import (
	"context"

	"wolfboard/domain/core"
	"wolfboard/domain/scoring"
)

// ResultWriterPort provides append-only write access to game results.
// This is the ONLY way to persist a result - results are never rewritten.
type ResultWriterPort interface {
	AppendResult(ctx context.Context, result *scoring.GameResult) error
}

// ResultReaderPort provides read-only access to stored game results
type ResultReaderPort interface {
	GetResult(ctx context.Context, gameID core.GameID) (*scoring.GameResult, error)
	ListResults(ctx context.Context, filters ResultFilters) ([]*scoring.GameResult, error)
	ResultsForAgent(ctx context.Context, agentID core.AgentID) ([]*scoring.GameResult, error)

	// IsScored reports whether a game has already been folded into state,
	// so resubmissions can be skipped instead of double-counted.
	IsScored(ctx context.Context, gameID core.GameID) (bool, error)
}

// ResultFilters for querying stored results
type ResultFilters struct {
	Winner *string
	Limit  int
	Offset int
}

// ResultLedger combines read and write access to the results log
type ResultLedger interface {
	ResultWriterPort
	ResultReaderPort
}
