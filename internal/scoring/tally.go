package scoring

import (
	"wolfboard/domain/game"
)

// PlayerStats are the per-player counters folded out of one game's event
// log. All metric formulas consume these counters, never the raw events.
type PlayerStats struct {
	Debates               int // debate turns taken
	Accusations           int // accusations made
	SuccessfulAccusations int

	Votes          int // votes cast
	CorrectVotes   int // votes against a member of the opposing team
	WrongTeamVotes int // votes against a teammate
	VotesAgainst   int // times targeted by other players' votes

	SabotageActions int // teammate votes + werewolf-on-werewolf kills

	Kills         int // night kills credited to this player
	OpponentKills int // kills whose victim was on the opposing team

	Investigations  int
	WerewolvesFound int

	Protections           int
	SuccessfulProtections int

	SuspicionsAgainst      int
	FalseSuspicionsAgainst int

	Survived        bool
	EliminatedRound int // 0 when survived
}

// Tally folds the game's event log into per-player counters. The record
// must already be validated; Tally assumes every event references known
// players.
func Tally(rec *game.GameRecord) map[game.PlayerName]*PlayerStats {
	stats := make(map[game.PlayerName]*PlayerStats, len(rec.Participants))
	for name := range rec.Participants {
		stats[name] = &PlayerStats{
			Survived:        rec.Survived(name),
			EliminatedRound: rec.EliminatedAt(name),
		}
	}

	sameTeam := func(a, b game.PlayerName) bool {
		ta, _ := rec.TeamOf(a)
		tb, _ := rec.TeamOf(b)
		return ta == tb
	}

	for _, e := range rec.Events {
		switch e.Kind {
		case game.EventDebateTurn:
			stats[e.Speaker].Debates++

		case game.EventVote:
			voter := stats[e.Voter]
			voter.Votes++
			if sameTeam(e.Voter, e.VoteTarget) {
				voter.WrongTeamVotes++
				voter.SabotageActions++
			} else {
				voter.CorrectVotes++
			}
			stats[e.VoteTarget].VotesAgainst++

		case game.EventAccusation:
			accuser := stats[e.Accuser]
			accuser.Accusations++
			if e.Successful {
				accuser.SuccessfulAccusations++
			}

		case game.EventElimination:
			if e.Cause == game.CauseKill && e.Actor != "" {
				actor := stats[e.Actor]
				actor.Kills++
				if sameTeam(e.Actor, e.Victim) {
					actor.SabotageActions++
				} else {
					actor.OpponentKills++
				}
			}

		case game.EventInvestigation:
			inv := stats[e.Investigator]
			inv.Investigations++
			if e.FoundWerewolf {
				inv.WerewolvesFound++
			}

		case game.EventProtection:
			prot := stats[e.Protector]
			prot.Protections++
			if e.Successful {
				prot.SuccessfulProtections++
			}

		case game.EventSuspicion:
			suspect := stats[e.Suspect]
			suspect.SuspicionsAgainst++
			if !e.Correct {
				suspect.FalseSuspicionsAgainst++
			}
		}
	}
	return stats
}
