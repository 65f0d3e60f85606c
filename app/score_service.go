package app

import (
	"context"
	"fmt"

	"wolfboard/domain/core"
	"wolfboard/domain/game"
	domscoring "wolfboard/domain/scoring"
	"wolfboard/internal/rating"
	"wolfboard/internal/scoring"
	"wolfboard/ports"

	"golang.org/x/sync/errgroup"
)

// ScoreService is the result assembler: it turns one finalized game record
// and a pre-game rating snapshot into a GameResult, and folds the result
// into persisted state. Scoring itself is a pure transform; persistence is
// all-or-nothing per game.
type ScoreService struct {
	calculator *scoring.Calculator
	elo        *rating.Engine
	ratings    ports.RatingRepository
	ledger     ports.ResultLedger
}

// NewScoreService creates a score service
func NewScoreService(ratings ports.RatingRepository, ledger ports.ResultLedger) *ScoreService {
	return &ScoreService{
		calculator: scoring.NewCalculator(),
		elo:        rating.NewEngine(),
		ratings:    ratings,
		ledger:     ledger,
	}
}

// Score computes the GameResult for a finalized record against a pre-game
// snapshot. Pure: no state is read or written, and identical inputs
// produce an identical result apart from the generated result ID and
// timestamp. Rejects the whole game before any computation when the record
// is malformed.
func (s *ScoreService) Score(ctx context.Context, rec *game.GameRecord, snapshot domscoring.RatingSnapshot) (*domscoring.GameResult, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	tally := scoring.Tally(rec)
	names := rec.PlayerNames()

	// Per-player metric computation is order-independent, so fan it out.
	records := make([]domscoring.PlayerGameRecord, len(names))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			p := rec.Participants[name]
			team, err := p.Role.TeamOf()
			if err != nil {
				return err
			}
			stats, ok := tally[name]
			if !ok {
				return core.NewEventLogError(rec.GameID, fmt.Sprintf("no tally for %s", name))
			}

			metrics := s.calculator.Calculate(stats, p.Role, game.PlayerCount)
			survival := scoring.SurvivalScore(stats.Survived, stats.EliminatedRound, rec.TotalRounds)
			won := team == rec.Winner
			metrics.Aggregate = scoring.Aggregate(won, survival, metrics)

			records[i] = domscoring.PlayerGameRecord{
				Player:          name,
				AgentID:         p.AgentID,
				Role:            p.Role,
				Team:            team,
				Won:             won,
				Survived:        stats.Survived,
				EliminatedRound: stats.EliminatedRound,
				Metrics:         metrics,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	updates := s.elo.UpdateAll(rec, snapshot)
	return domscoring.NewGameResult(rec.GameID, rec.Winner, records, updates, rec.Fingerprint())
}

// ScoreAndPersist scores a game against the stored rating state, appends
// the result to the ledger, and applies the rating deltas. A game already
// present in the ledger is skipped and reported via ErrGameAlreadyScored;
// rejected games leave state untouched.
func (s *ScoreService) ScoreAndPersist(ctx context.Context, rec *game.GameRecord) (*domscoring.GameResult, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	scored, err := s.ledger.IsScored(ctx, rec.GameID)
	if err != nil {
		return nil, fmt.Errorf("ledger lookup failed: %w", err)
	}
	if scored {
		return nil, fmt.Errorf("%w: %s", core.ErrGameAlreadyScored, rec.GameID)
	}

	agents := make([]core.AgentID, 0, len(rec.Participants))
	for _, p := range rec.Participants {
		agents = append(agents, p.AgentID)
	}
	snapshot, err := s.ratings.SnapshotFor(ctx, agents)
	if err != nil {
		return nil, fmt.Errorf("rating snapshot failed: %w", err)
	}

	result, err := s.Score(ctx, rec, snapshot)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.AppendResult(ctx, result); err != nil {
		return nil, fmt.Errorf("appending result failed: %w", err)
	}
	if err := s.ratings.ApplyUpdates(ctx, result.RatingUpdates); err != nil {
		return nil, fmt.Errorf("applying rating updates failed: %w", err)
	}
	return result, nil
}
