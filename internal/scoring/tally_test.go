package scoring_test

import (
	"testing"

	"wolfboard/domain/game"
	"wolfboard/internal/scoring"
	"wolfboard/internal/testkit"
)

func TestTally_FixtureGame(t *testing.T) {
	rec := testkit.NewGameRecord("game-tally-1", game.TeamVillagers)
	stats := scoring.Tally(rec)

	if len(stats) != game.PlayerCount {
		t.Fatalf("Expected stats for %d players, got %d", game.PlayerCount, len(stats))
	}

	// Player_1 is the werewolf who killed Player_8 and was voted out in round 2.
	wolf := stats["Player_1"]
	if wolf.Kills != 1 || wolf.OpponentKills != 1 {
		t.Errorf("Expected 1 opponent kill for Player_1, got kills=%d opponent=%d", wolf.Kills, wolf.OpponentKills)
	}
	if wolf.Debates != 1 {
		t.Errorf("Expected 1 debate turn for Player_1, got %d", wolf.Debates)
	}
	if wolf.VotesAgainst != 4 {
		t.Errorf("Expected 4 votes against Player_1, got %d", wolf.VotesAgainst)
	}
	if wolf.Survived {
		t.Error("Player_1 was eliminated and should not be marked survived")
	}
	if wolf.EliminatedRound != 2 {
		t.Errorf("Expected Player_1 eliminated in round 2, got %d", wolf.EliminatedRound)
	}

	// Player_3 is the seer: one true investigation, one successful
	// accusation, one cross-team vote.
	seer := stats["Player_3"]
	if seer.Investigations != 1 || seer.WerewolvesFound != 1 {
		t.Errorf("Expected a found werewolf for Player_3, got inv=%d found=%d", seer.Investigations, seer.WerewolvesFound)
	}
	if seer.Accusations != 1 || seer.SuccessfulAccusations != 1 {
		t.Errorf("Expected 1 successful accusation for Player_3, got acc=%d succ=%d", seer.Accusations, seer.SuccessfulAccusations)
	}
	if seer.Votes != 1 || seer.CorrectVotes != 1 || seer.WrongTeamVotes != 0 {
		t.Errorf("Expected one correct vote for Player_3, got votes=%d correct=%d wrong=%d", seer.Votes, seer.CorrectVotes, seer.WrongTeamVotes)
	}
	if !seer.Survived {
		t.Error("Player_3 should survive the fixture game")
	}

	// Player_4 is the doctor with one successful protection.
	doctor := stats["Player_4"]
	if doctor.Protections != 1 || doctor.SuccessfulProtections != 1 {
		t.Errorf("Expected one successful protection for Player_4, got prot=%d succ=%d", doctor.Protections, doctor.SuccessfulProtections)
	}

	// Player_2 drew one suspicion that turned out wrong and voted cross-team.
	accomplice := stats["Player_2"]
	if accomplice.SuspicionsAgainst != 1 || accomplice.FalseSuspicionsAgainst != 1 {
		t.Errorf("Expected one false suspicion against Player_2, got total=%d false=%d", accomplice.SuspicionsAgainst, accomplice.FalseSuspicionsAgainst)
	}
	if accomplice.CorrectVotes != 1 || accomplice.WrongTeamVotes != 0 {
		t.Errorf("Werewolf vote against a villager counts as cross-team, got correct=%d wrong=%d", accomplice.CorrectVotes, accomplice.WrongTeamVotes)
	}

	// Player_8 was killed in round 1 and never acted.
	victim := stats["Player_8"]
	if victim.Survived || victim.EliminatedRound != 1 {
		t.Errorf("Expected Player_8 killed in round 1, got survived=%v round=%d", victim.Survived, victim.EliminatedRound)
	}
}

func TestTally_TeammateVoteIsSabotage(t *testing.T) {
	rec := testkit.NewGameRecord("game-tally-2", game.TeamVillagers)
	rec.Events = append(rec.Events, game.NewVote("Player_5", "Player_6", 3))

	stats := scoring.Tally(rec)
	voter := stats["Player_5"]
	if voter.WrongTeamVotes != 1 {
		t.Errorf("Expected 1 wrong-team vote, got %d", voter.WrongTeamVotes)
	}
	if voter.SabotageActions != 1 {
		t.Errorf("Teammate vote should count as sabotage, got %d", voter.SabotageActions)
	}
}

func TestTally_WerewolfKillingWerewolfIsSabotage(t *testing.T) {
	rec := testkit.NewGameRecord("game-tally-3", game.TeamVillagers)
	rec.Events = append(rec.Events, game.NewKill("Player_2", "Player_1", 3))

	stats := scoring.Tally(rec)
	killer := stats["Player_2"]
	if killer.Kills != 1 {
		t.Errorf("Expected 1 kill credited, got %d", killer.Kills)
	}
	if killer.OpponentKills != 0 {
		t.Errorf("Teammate kill is not an opponent kill, got %d", killer.OpponentKills)
	}
	if killer.SabotageActions != 1 {
		t.Errorf("Teammate kill should count as sabotage, got %d", killer.SabotageActions)
	}
}
