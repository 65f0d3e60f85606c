package scoring

import (
	"testing"

	"wolfboard/domain/game"
)

func TestMetricSetValidate(t *testing.T) {
	valid := MetricSet{Influence: 0.5, Consistency: 1.0, Detection: 0.3, Aggregate: 0.6}
	if err := valid.Validate(); err != nil {
		t.Errorf("In-bounds metrics should validate, got %v", err)
	}

	if err := (MetricSet{Influence: 1.2}).Validate(); err == nil {
		t.Error("Score above 1 should fail validation")
	}
	if err := (MetricSet{Sabotage: -0.1}).Validate(); err == nil {
		t.Error("Negative score should fail validation")
	}
}

func TestClassFor(t *testing.T) {
	if ClassFor(game.TeamWerewolves) != ClassWerewolf {
		t.Error("Werewolf team should map to the werewolf pool")
	}
	if ClassFor(game.TeamVillagers) != ClassVillager {
		t.Error("Villager team should map to the villager pool")
	}
}

func TestRatingSnapshot_DefaultsToInitial(t *testing.T) {
	snapshot := make(RatingSnapshot)
	if got := snapshot.Rating("agent-x", ClassWerewolf); got != InitialRating {
		t.Errorf("Unseen agent should rate %v, got %v", InitialRating, got)
	}

	snapshot.Set("agent-x", ClassWerewolf, 1100)
	if got := snapshot.Rating("agent-x", ClassWerewolf); got != 1100 {
		t.Errorf("Stored rating should be returned, got %v", got)
	}
	if got := snapshot.Rating("agent-x", ClassVillager); got != InitialRating {
		t.Errorf("Unseen pool should still default, got %v", got)
	}
}

func TestNewGameResult_RequiresEightPlayers(t *testing.T) {
	players := make([]PlayerGameRecord, 7)
	if _, err := NewGameResult("game-x", game.TeamVillagers, players, nil, "fp"); err == nil {
		t.Error("7 player records should be rejected")
	}

	players = make([]PlayerGameRecord, game.PlayerCount)
	players[0].Metrics.Influence = 1.5
	if _, err := NewGameResult("game-x", game.TeamVillagers, players, nil, "fp"); err == nil {
		t.Error("Out-of-bounds metrics should be rejected")
	}
}
