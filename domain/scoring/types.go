package scoring

import (
	"fmt"

	"wolfboard/domain/core"
	"wolfboard/domain/game"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// RoleClass is the rating pool a game is scored under. An agent accumulates
// two independent rating histories, one per class.
type RoleClass string

const (
	ClassWerewolf RoleClass = "werewolf"
	ClassVillager RoleClass = "villager"
)

// RoleClasses lists every rating pool in deterministic order
var RoleClasses = []RoleClass{ClassWerewolf, ClassVillager}

// InitialRating is the rating of an agent before any games in a pool
const InitialRating = 1000.0

// ClassFor maps a team to its rating pool
func ClassFor(team game.Team) RoleClass {
	if team == game.TeamWerewolves {
		return ClassWerewolf
	}
	return ClassVillager
}

// MetricSet holds the five behavioral sub-scores plus the weighted aggregate,
// all bounded to [0,1]. Detection and Deception are mutually exclusive by
// role: exactly one of them is nonzero for any player.
type MetricSet struct {
	Influence   float64 `json:"influence"`
	Consistency float64 `json:"consistency"`
	Sabotage    float64 `json:"sabotage"` // penalty metric, lower is better
	Detection   float64 `json:"detection"`
	Deception   float64 `json:"deception"`
	Aggregate   float64 `json:"aggregate_score"`
}

// Validate checks the bounds invariant on every score
func (m MetricSet) Validate() error {
	for name, v := range map[string]float64{
		"influence":   m.Influence,
		"consistency": m.Consistency,
		"sabotage":    m.Sabotage,
		"detection":   m.Detection,
		"deception":   m.Deception,
		"aggregate":   m.Aggregate,
	} {
		if v < 0.0 || v > 1.0 {
			return fmt.Errorf("%s must be in [0.0, 1.0], got %f", name, v)
		}
	}
	return nil
}

// ============================================================================
// PER-GAME RECORDS (immutable once assembled)
// ============================================================================

// PlayerGameRecord is one participant's scored performance in a single game
type PlayerGameRecord struct {
	Player          game.PlayerName `json:"player_name"`
	AgentID         core.AgentID    `json:"agent_id"`
	Role            game.Role       `json:"role"`
	Team            game.Team       `json:"team"`
	Won             bool            `json:"won"`
	Survived        bool            `json:"survived"`
	EliminatedRound int             `json:"eliminated_round,omitempty"` // 0 when survived
	Metrics         MetricSet       `json:"metrics"`
}

// RatingUpdate is the signed rating adjustment for one agent in one pool
type RatingUpdate struct {
	AgentID core.AgentID `json:"agent_id"`
	Class   RoleClass    `json:"role_class"`
	Before  float64      `json:"elo_before"`
	Delta   int          `json:"elo_delta"`
	After   float64      `json:"elo_after"`
}

// GameResult is the full output of scoring one game. Append-only; once
// written it is never recomputed.
type GameResult struct {
	ResultID      core.ResultID      `json:"result_id"`
	GameID        core.GameID        `json:"game_id"`
	Winner        game.Team          `json:"winner"`
	Players       []PlayerGameRecord `json:"players"`
	RatingUpdates []RatingUpdate     `json:"rating_updates"`
	Fingerprint   core.Hash          `json:"fingerprint"`
	ScoredAt      core.Timestamp     `json:"scored_at"`
}

// NewGameResult creates a game result with invariant validation
func NewGameResult(gameID core.GameID, winner game.Team, players []PlayerGameRecord, updates []RatingUpdate, fingerprint core.Hash) (*GameResult, error) {
	if len(players) != game.PlayerCount {
		return nil, fmt.Errorf("expected %d player records, got %d", game.PlayerCount, len(players))
	}
	for _, p := range players {
		if err := p.Metrics.Validate(); err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Player, err)
		}
	}
	return &GameResult{
		ResultID:      core.ResultID(core.NewID()),
		GameID:        gameID,
		Winner:        winner,
		Players:       players,
		RatingUpdates: updates,
		Fingerprint:   fingerprint,
		ScoredAt:      core.Now(),
	}, nil
}

// ============================================================================
// RATING STATE (the only cross-game mutable state, externally owned)
// ============================================================================

// PoolRatings maps each role class to the agent's current rating in it
type PoolRatings map[RoleClass]float64

// RatingSnapshot is the pre-game view of every participant's ratings. The
// engine reads it once, computes deltas, and never mutates it.
type RatingSnapshot map[core.AgentID]PoolRatings

// Rating returns the agent's rating in a pool, defaulting to InitialRating
// for unseen agents
func (s RatingSnapshot) Rating(agent core.AgentID, class RoleClass) float64 {
	if pools, ok := s[agent]; ok {
		if r, ok := pools[class]; ok {
			return r
		}
	}
	return InitialRating
}

// Set records a rating in the snapshot (used when loading state)
func (s RatingSnapshot) Set(agent core.AgentID, class RoleClass, rating float64) {
	pools, ok := s[agent]
	if !ok {
		pools = make(PoolRatings, len(RoleClasses))
		s[agent] = pools
	}
	pools[class] = rating
}
