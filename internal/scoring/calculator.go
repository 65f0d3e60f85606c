package scoring

import (
	"math"

	"wolfboard/domain/game"
	"wolfboard/domain/scoring"
)

// Metric weights. Influence and detection/deception are three-factor
// weighted sums; consistency starts from a neutral 0.5 baseline.
const (
	influenceDebateWeight     = 0.4
	influenceAccusationWeight = 0.3
	influenceTargetWeight     = 0.3
	influenceDebateCap        = 5.0
	influenceAccusationCap    = 0.3
	influenceAccusationStep   = 0.15

	consistencyBaseline    = 0.5
	consistencyVotePenalty = 0.10
	consistencyVoteCap     = 3
	consistencyRoleBonus   = 0.20

	sabotagePenaltyStep = 0.25

	detectionVoteWeight       = 0.4
	detectionAccusationWeight = 0.3
	detectionRoleWeight       = 0.3
	villagerSurvivedBonus     = 0.2
	villagerEliminatedBonus   = 0.1

	deceptionSurvivalWeight  = 0.4
	deceptionSuspicionWeight = 0.3
	deceptionKillCap         = 0.3
	deceptionKillStep        = 0.1
)

// Calculator computes the five behavioral sub-scores for one player from
// the tallied event counters. Pure; no state.
type Calculator struct{}

// NewCalculator creates a metric calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate produces the role-conditional sub-scores, each clamped to
// [0,1]. Detection is fixed at 0 for werewolves, deception at 0 for the
// villager team; the aggregate field is left for the Aggregate scorer.
func (c *Calculator) Calculate(stats *PlayerStats, role game.Role, playerCount int) scoring.MetricSet {
	m := scoring.MetricSet{
		Influence:   c.influence(stats, playerCount),
		Consistency: c.consistency(stats, role),
		Sabotage:    c.sabotage(stats),
	}

	capability, err := role.CapabilityOf()
	if err != nil {
		return m
	}
	switch capability {
	case game.CapabilityDetection:
		m.Detection = c.detection(stats, role)
	case game.CapabilityDeception:
		m.Deception = c.deception(stats)
	}
	return m
}

// influence rewards debate participation and accusations that stuck, and
// penalizes being a frequent vote target
func (c *Calculator) influence(stats *PlayerStats, playerCount int) float64 {
	debate := math.Min(1.0, float64(stats.Debates)/influenceDebateCap)
	accusation := math.Min(influenceAccusationCap, float64(stats.SuccessfulAccusations)*influenceAccusationStep)
	target := math.Max(0, 1.0-float64(stats.VotesAgainst)/float64(playerCount*2))

	score := influenceDebateWeight*debate +
		influenceAccusationWeight*accusation +
		influenceTargetWeight*target
	return clamp(score, 0, 1)
}

// consistency starts from a neutral baseline, subtracts wrong votes against
// teammates (at most 3 counted), and adds a bonus when the player's
// team-aligned correct action occurred
func (c *Calculator) consistency(stats *PlayerStats, role game.Role) float64 {
	wrongVotes := stats.WrongTeamVotes
	if wrongVotes > consistencyVoteCap {
		wrongVotes = consistencyVoteCap
	}

	score := consistencyBaseline - consistencyVotePenalty*float64(wrongVotes)
	if c.roleAppropriateAction(stats, role) {
		score += consistencyRoleBonus
	}
	return clamp(score, 0, 1)
}

// roleAppropriateAction reports whether the player's team-aligned correct
// action occurred: a werewolf eliminated an opposing-team member, or a
// villager-team player voted against a werewolf
func (c *Calculator) roleAppropriateAction(stats *PlayerStats, role game.Role) bool {
	if role == game.RoleWerewolf {
		return stats.OpponentKills > 0
	}
	return stats.CorrectVotes > 0
}

// sabotage is a penalty metric: each action against the player's own team
// costs a quarter of the scale
func (c *Calculator) sabotage(stats *PlayerStats) float64 {
	return math.Min(1.0, float64(stats.SabotageActions)*sabotagePenaltyStep)
}

// detection scores how well a villager-team player identified werewolves
func (c *Calculator) detection(stats *PlayerStats, role game.Role) float64 {
	votes := safeRatio(float64(stats.CorrectVotes), float64(stats.Votes))
	accusations := safeRatio(float64(stats.SuccessfulAccusations), float64(stats.Accusations))

	var roleBonus float64
	switch role {
	case game.RoleSeer:
		roleBonus = safeRatio(float64(stats.WerewolvesFound), float64(stats.Investigations))
	case game.RoleDoctor:
		roleBonus = safeRatio(float64(stats.SuccessfulProtections), float64(stats.Protections))
	default:
		if stats.Survived {
			roleBonus = villagerSurvivedBonus
		} else {
			roleBonus = villagerEliminatedBonus
		}
	}

	score := detectionVoteWeight*votes +
		detectionAccusationWeight*accusations +
		detectionRoleWeight*roleBonus
	return clamp(score, 0, 1)
}

// deception scores how well a werewolf stayed hidden: surviving the game,
// drawing suspicions that turned out wrong, and landing kills (up to 0.3)
func (c *Calculator) deception(stats *PlayerStats) float64 {
	var survival float64
	if stats.Survived {
		survival = 1.0
	}
	suspicion := safeRatio(float64(stats.FalseSuspicionsAgainst), float64(stats.SuspicionsAgainst))
	kills := math.Min(deceptionKillCap, float64(stats.Kills)*deceptionKillStep)

	score := deceptionSurvivalWeight*survival +
		deceptionSuspicionWeight*suspicion +
		kills
	return clamp(score, 0, 1)
}
