package app

import (
	"context"
	"fmt"
	"sort"

	"wolfboard/domain/core"
	"wolfboard/domain/game"
	domscoring "wolfboard/domain/scoring"
	"wolfboard/ports"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// AgentSummary is the cumulative view of one agent across all its games
type AgentSummary struct {
	AgentID        core.AgentID                      `json:"agent_id"`
	Rank           int                               `json:"rank"`
	GeneralRating  float64                           `json:"general_elo"`
	PoolRatings    map[domscoring.RoleClass]float64  `json:"pool_elo"`
	GamesPlayed    int                               `json:"games_played"`
	Wins           int                               `json:"wins"`
	Losses         int                               `json:"losses"`
	WinRate        float64                           `json:"win_rate"`
	GamesAsWolf    int                               `json:"games_as_werewolf"`
	GamesAsVillage int                               `json:"games_as_villager"`
	WinsAsWolf     int                               `json:"wins_as_werewolf"`
	WinsAsVillage  int                               `json:"wins_as_villager"`
	MeanAggregate  float64                           `json:"mean_aggregate_score"`
	MetricMeans    map[string]float64                `json:"metric_means"`
}

// AgentGameEntry is one line of an agent's game history
type AgentGameEntry struct {
	GameID    core.GameID    `json:"game_id"`
	Player    string         `json:"player_name"`
	Role      game.Role      `json:"role"`
	Team      game.Team      `json:"team"`
	Won       bool           `json:"won"`
	EloBefore float64        `json:"elo_before"`
	EloDelta  int            `json:"elo_delta"`
	EloAfter  float64        `json:"elo_after"`
	Aggregate float64        `json:"aggregate_score"`
	ScoredAt  core.Timestamp `json:"scored_at"`
}

// AgentHistory is the per-agent index: current state plus game history
type AgentHistory struct {
	Summary AgentSummary     `json:"summary"`
	Games   []AgentGameEntry `json:"game_history"`
}

// LeagueStats describes the rating distribution across ranked agents
type LeagueStats struct {
	TotalAgents int     `json:"total_agents"`
	TotalGames  int     `json:"total_games"`
	MeanRating  float64 `json:"mean_rating"`
	StdDev      float64 `json:"rating_std_dev"`
	Median      float64 `json:"median_rating"`
	P90         float64 `json:"p90_rating"`
}

// Leaderboard is the full ranking output
type Leaderboard struct {
	GeneratedAt core.Timestamp `json:"last_updated"`
	League      LeagueStats    `json:"league"`
	Rankings    []AgentSummary `json:"rankings"`
}

// LeaderboardService folds stored game results into cumulative per-agent
// summaries and league-level rankings. Read-only over the ledger and
// rating state.
type LeaderboardService struct {
	ledger  ports.ResultReaderPort
	ratings ports.RatingReaderPort
}

// NewLeaderboardService creates a leaderboard service
func NewLeaderboardService(ledger ports.ResultReaderPort, ratings ports.RatingReaderPort) *LeaderboardService {
	return &LeaderboardService{ledger: ledger, ratings: ratings}
}

// Build assembles the current leaderboard from every stored result
func (s *LeaderboardService) Build(ctx context.Context) (*Leaderboard, error) {
	results, err := s.ledger.ListResults(ctx, ports.ResultFilters{})
	if err != nil {
		return nil, fmt.Errorf("listing results failed: %w", err)
	}
	snapshot, err := s.ratings.AllRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ratings failed: %w", err)
	}

	summaries := s.foldResults(results, snapshot)

	rankings := make([]AgentSummary, 0, len(summaries))
	for _, sum := range summaries {
		if sum.GamesPlayed == 0 {
			continue
		}
		rankings = append(rankings, *sum)
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].GeneralRating != rankings[j].GeneralRating {
			return rankings[i].GeneralRating > rankings[j].GeneralRating
		}
		return rankings[i].AgentID < rankings[j].AgentID
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return &Leaderboard{
		GeneratedAt: core.Now(),
		League:      s.leagueStats(rankings, len(results)),
		Rankings:    rankings,
	}, nil
}

// History assembles one agent's summary and chronological game history
func (s *LeaderboardService) History(ctx context.Context, agentID core.AgentID) (*AgentHistory, error) {
	results, err := s.ledger.ResultsForAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("listing agent results failed: %w", err)
	}
	if len(results) == 0 {
		return nil, core.NewNotFoundError("agent", agentID.String())
	}
	snapshot, err := s.ratings.AllRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ratings failed: %w", err)
	}

	summaries := s.foldResults(results, snapshot)
	summary, ok := summaries[agentID]
	if !ok {
		return nil, core.NewNotFoundError("agent", agentID.String())
	}

	history := make([]AgentGameEntry, 0, len(results))
	for _, res := range results {
		for _, p := range res.Players {
			if p.AgentID != agentID {
				continue
			}
			entry := AgentGameEntry{
				GameID:    res.GameID,
				Player:    string(p.Player),
				Role:      p.Role,
				Team:      p.Team,
				Won:       p.Won,
				Aggregate: p.Metrics.Aggregate,
				ScoredAt:  res.ScoredAt,
			}
			for _, u := range res.RatingUpdates {
				if u.AgentID == agentID && u.Class == domscoring.ClassFor(p.Team) {
					entry.EloBefore = u.Before
					entry.EloDelta = u.Delta
					entry.EloAfter = u.After
				}
			}
			history = append(history, entry)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].ScoredAt.Before(history[j].ScoredAt)
	})

	return &AgentHistory{Summary: *summary, Games: history}, nil
}

// foldResults accumulates per-agent counters and metric running averages
func (s *LeaderboardService) foldResults(results []*domscoring.GameResult, snapshot domscoring.RatingSnapshot) map[core.AgentID]*AgentSummary {
	type acc struct {
		summary    *AgentSummary
		aggregates []float64
		metrics    map[string][]float64
	}
	accs := make(map[core.AgentID]*acc)

	for _, res := range results {
		for _, p := range res.Players {
			a, ok := accs[p.AgentID]
			if !ok {
				pools := make(map[domscoring.RoleClass]float64, len(domscoring.RoleClasses))
				for _, class := range domscoring.RoleClasses {
					pools[class] = snapshot.Rating(p.AgentID, class)
				}
				a = &acc{
					summary: &AgentSummary{
						AgentID:     p.AgentID,
						PoolRatings: pools,
					},
					metrics: make(map[string][]float64),
				}
				accs[p.AgentID] = a
			}

			sum := a.summary
			sum.GamesPlayed++
			if p.Won {
				sum.Wins++
			} else {
				sum.Losses++
			}
			if p.Team == game.TeamWerewolves {
				sum.GamesAsWolf++
				if p.Won {
					sum.WinsAsWolf++
				}
			} else {
				sum.GamesAsVillage++
				if p.Won {
					sum.WinsAsVillage++
				}
			}

			a.aggregates = append(a.aggregates, p.Metrics.Aggregate)
			a.metrics["influence"] = append(a.metrics["influence"], p.Metrics.Influence)
			a.metrics["consistency"] = append(a.metrics["consistency"], p.Metrics.Consistency)
			a.metrics["sabotage"] = append(a.metrics["sabotage"], p.Metrics.Sabotage)
			a.metrics["detection"] = append(a.metrics["detection"], p.Metrics.Detection)
			a.metrics["deception"] = append(a.metrics["deception"], p.Metrics.Deception)
		}
	}

	summaries := make(map[core.AgentID]*AgentSummary, len(accs))
	for agentID, a := range accs {
		sum := a.summary
		if sum.GamesPlayed > 0 {
			sum.WinRate = float64(sum.Wins) / float64(sum.GamesPlayed) * 100.0
		}

		// General rating: mean of the agent's pool ratings, weighted by
		// games played in each pool.
		weights := []float64{float64(sum.GamesAsWolf), float64(sum.GamesAsVillage)}
		values := []float64{sum.PoolRatings[domscoring.ClassWerewolf], sum.PoolRatings[domscoring.ClassVillager]}
		if sum.GamesAsWolf+sum.GamesAsVillage > 0 {
			sum.GeneralRating = stat.Mean(values, weights)
		} else {
			sum.GeneralRating = domscoring.InitialRating
		}

		if mean, err := stats.Mean(a.aggregates); err == nil {
			sum.MeanAggregate = mean
		}
		sum.MetricMeans = make(map[string]float64, len(a.metrics))
		for name, vals := range a.metrics {
			if mean, err := stats.Mean(vals); err == nil {
				sum.MetricMeans[name] = mean
			}
		}
		summaries[agentID] = sum
	}
	return summaries
}

// leagueStats computes the rating distribution across ranked agents
func (s *LeaderboardService) leagueStats(rankings []AgentSummary, totalGames int) LeagueStats {
	ls := LeagueStats{
		TotalAgents: len(rankings),
		TotalGames:  totalGames,
	}
	if len(rankings) == 0 {
		return ls
	}

	ratings := make([]float64, len(rankings))
	for i, r := range rankings {
		ratings[i] = r.GeneralRating
	}
	ls.MeanRating = stat.Mean(ratings, nil)
	ls.StdDev = stat.StdDev(ratings, nil)
	if median, err := stats.Median(ratings); err == nil {
		ls.Median = median
	}
	if p90, err := stats.Percentile(ratings, 90); err == nil {
		ls.P90 = p90
	}
	return ls
}
