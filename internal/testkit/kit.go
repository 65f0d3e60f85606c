// Package testkit provides game fixtures and in-memory ports for tests.
package testkit

import (
	"context"
	"fmt"
	"sync"

	"wolfboard/domain/core"
	"wolfboard/domain/game"
	"wolfboard/domain/scoring"
	"wolfboard/ports"
)

// Seat names used by every fixture game, ordered werewolves first
var SeatNames = []game.PlayerName{
	"Player_1", "Player_2", "Player_3", "Player_4",
	"Player_5", "Player_6", "Player_7", "Player_8",
}

// fixtureRoles assigns the required composition across the fixture seats
var fixtureRoles = []game.Role{
	game.RoleWerewolf, game.RoleWerewolf,
	game.RoleSeer, game.RoleDoctor,
	game.RoleVillager, game.RoleVillager, game.RoleVillager, game.RoleVillager,
}

// NewGameRecord builds a valid finalized game with the standard 8-role
// composition and a small but complete event log. Agent IDs default to
// agent-1..agent-8; callers mutate the record for edge cases.
func NewGameRecord(gameID string, winner game.Team) *game.GameRecord {
	participants := make(map[game.PlayerName]game.Participant, len(SeatNames))
	for i, name := range SeatNames {
		participants[name] = game.Participant{
			AgentID: core.AgentID(fmt.Sprintf("agent-%d", i+1)),
			Role:    fixtureRoles[i],
		}
	}

	events := []game.Event{
		game.NewDebateTurn("Player_1", 1),
		game.NewDebateTurn("Player_3", 1),
		game.NewDebateTurn("Player_5", 1),
		game.NewKill("Player_1", "Player_8", 1),
		game.NewInvestigation("Player_3", "Player_1", 1, true),
		game.NewProtection("Player_4", "Player_3", 1, true),
		game.NewSuspicion("Player_2", 2, false),
		game.NewAccusation("Player_3", "Player_1", 2, true),
		game.NewVote("Player_3", "Player_1", 2),
		game.NewVote("Player_4", "Player_1", 2),
		game.NewVote("Player_5", "Player_1", 2),
		game.NewVote("Player_6", "Player_1", 2),
		game.NewVote("Player_1", "Player_5", 2),
		game.NewVote("Player_2", "Player_5", 2),
		game.NewVoteElimination("Player_1", 2),
	}

	return &game.GameRecord{
		GameID:       core.GameID(gameID),
		Participants: participants,
		TotalRounds:  3,
		Winner:       winner,
		Events:       events,
	}
}

// InMemoryRatingRepository implements ports.RatingRepository in memory
type InMemoryRatingRepository struct {
	mu      sync.RWMutex
	ratings scoring.RatingSnapshot
}

// NewInMemoryRatingRepository creates an empty in-memory rating table
func NewInMemoryRatingRepository() *InMemoryRatingRepository {
	return &InMemoryRatingRepository{ratings: make(scoring.RatingSnapshot)}
}

// SnapshotFor copies the stored ratings of the given agents
func (r *InMemoryRatingRepository) SnapshotFor(ctx context.Context, agents []core.AgentID) (scoring.RatingSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(scoring.RatingSnapshot, len(agents))
	for _, agent := range agents {
		if pools, ok := r.ratings[agent]; ok {
			for class, rating := range pools {
				snapshot.Set(agent, class, rating)
			}
		}
	}
	return snapshot, nil
}

// AllRatings copies the full stored table
func (r *InMemoryRatingRepository) AllRatings(ctx context.Context) (scoring.RatingSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(scoring.RatingSnapshot, len(r.ratings))
	for agent, pools := range r.ratings {
		for class, rating := range pools {
			snapshot.Set(agent, class, rating)
		}
	}
	return snapshot, nil
}

// ApplyUpdates applies a delta set atomically under the lock
func (r *InMemoryRatingRepository) ApplyUpdates(ctx context.Context, updates []scoring.RatingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range updates {
		r.ratings.Set(u.AgentID, u.Class, u.After)
	}
	return nil
}

// Seed sets a rating directly, for arranging test scenarios
func (r *InMemoryRatingRepository) Seed(agent core.AgentID, class scoring.RoleClass, rating float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratings.Set(agent, class, rating)
}

// InMemoryResultLedger implements ports.ResultLedger in memory
type InMemoryResultLedger struct {
	mu      sync.RWMutex
	results []*scoring.GameResult
	byGame  map[core.GameID]*scoring.GameResult
}

// NewInMemoryResultLedger creates an empty in-memory results log
func NewInMemoryResultLedger() *InMemoryResultLedger {
	return &InMemoryResultLedger{byGame: make(map[core.GameID]*scoring.GameResult)}
}

// AppendResult appends one result; duplicates for a game are an error
func (l *InMemoryResultLedger) AppendResult(ctx context.Context, result *scoring.GameResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.byGame[result.GameID]; ok {
		return fmt.Errorf("result for game %s already appended", result.GameID)
	}
	l.results = append(l.results, result)
	l.byGame[result.GameID] = result
	return nil
}

// IsScored reports whether a game is in the log
func (l *InMemoryResultLedger) IsScored(ctx context.Context, gameID core.GameID) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.byGame[gameID]
	return ok, nil
}

// GetResult returns a stored result
func (l *InMemoryResultLedger) GetResult(ctx context.Context, gameID core.GameID) (*scoring.GameResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result, ok := l.byGame[gameID]
	if !ok {
		return nil, core.NewNotFoundError("game result", gameID.String())
	}
	return result, nil
}

// ListResults returns stored results in append order
func (l *InMemoryResultLedger) ListResults(ctx context.Context, filters ports.ResultFilters) ([]*scoring.GameResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*scoring.GameResult, 0, len(l.results))
	for _, r := range l.results {
		if filters.Winner != nil && string(r.Winner) != *filters.Winner {
			continue
		}
		out = append(out, r)
	}
	if filters.Offset > 0 && filters.Offset < len(out) {
		out = out[filters.Offset:]
	} else if filters.Offset >= len(out) {
		out = nil
	}
	if filters.Limit > 0 && filters.Limit < len(out) {
		out = out[:filters.Limit]
	}
	return out, nil
}

// ResultsForAgent returns every result the agent appears in
func (l *InMemoryResultLedger) ResultsForAgent(ctx context.Context, agentID core.AgentID) ([]*scoring.GameResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*scoring.GameResult
	for _, r := range l.results {
		for _, p := range r.Players {
			if p.AgentID == agentID {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}
