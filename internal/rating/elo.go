// Package rating implements the opponent-strength-adjusted ELO update used
// for the leaderboard. Ratings live in two independent pools per agent
// (werewolf games and villager games); a game adjusts each participant's
// pool for the role class it was played under.
package rating

import (
	"math"

	"wolfboard/domain/core"
	"wolfboard/domain/game"
	"wolfboard/domain/scoring"
)

// KFactor scales every rating adjustment
const KFactor = 32.0

// Engine computes post-game rating deltas from a pre-game snapshot. Pure:
// every delta depends only on the snapshot, so the 8 updates can be
// computed in any order.
type Engine struct{}

// NewEngine creates a rating engine
func NewEngine() *Engine {
	return &Engine{}
}

// ExpectedScore is the standard ELO win expectation of a player against an
// opponent pool of the given average rating
func ExpectedScore(playerRating, opponentAvg float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opponentAvg-playerRating)/400.0))
}

// Delta computes the signed integer rating change for one outcome
func Delta(playerRating, opponentAvg float64, won bool) int {
	actual := 0.0
	if won {
		actual = 1.0
	}
	expected := ExpectedScore(playerRating, opponentAvg)
	return int(math.Round(KFactor * (actual - expected)))
}

// opponentAverage is the mean pre-game rating, in the given pool, of every
// participant on the opposing team. Empty opposition falls back to the
// initial rating so the expectation stays defined.
func (e *Engine) opponentAverage(rec *game.GameRecord, snapshot scoring.RatingSnapshot, team game.Team, class scoring.RoleClass) float64 {
	var sum float64
	var n int
	for _, p := range rec.Participants {
		pTeam, err := p.Role.TeamOf()
		if err != nil || pTeam == team {
			continue
		}
		sum += snapshot.Rating(p.AgentID, class)
		n++
	}
	if n == 0 {
		return scoring.InitialRating
	}
	return sum / float64(n)
}

// UpdateAll computes the rating update for every participant of a finalized
// game against the pre-game snapshot. Each agent is adjusted in the pool
// matching the team it played on.
func (e *Engine) UpdateAll(rec *game.GameRecord, snapshot scoring.RatingSnapshot) []scoring.RatingUpdate {
	updates := make([]scoring.RatingUpdate, 0, len(rec.Participants))
	for _, name := range rec.PlayerNames() {
		p := rec.Participants[name]
		team, err := p.Role.TeamOf()
		if err != nil {
			continue
		}
		updates = append(updates, e.Update(rec, snapshot, p.AgentID, team))
	}
	return updates
}

// Update computes a single agent's update, exposed for callers that score
// one participant at a time
func (e *Engine) Update(rec *game.GameRecord, snapshot scoring.RatingSnapshot, agentID core.AgentID, team game.Team) scoring.RatingUpdate {
	class := scoring.ClassFor(team)
	before := snapshot.Rating(agentID, class)
	oppAvg := e.opponentAverage(rec, snapshot, team, class)
	delta := Delta(before, oppAvg, team == rec.Winner)
	return scoring.RatingUpdate{
		AgentID: agentID,
		Class:   class,
		Before:  before,
		Delta:   delta,
		After:   before + float64(delta),
	}
}
