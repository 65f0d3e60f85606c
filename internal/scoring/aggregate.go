package scoring

import (
	"wolfboard/domain/scoring"
)

// Aggregate weights. Deception and detection share a weight because they
// are mutually exclusive by role, so no role branching happens here.
const (
	aggregateWinWeight         = 0.30
	aggregateSurvivalWeight    = 0.15
	aggregateInfluenceWeight   = 0.15
	aggregateConsistencyWeight = 0.10
	aggregateDeceptionWeight   = 0.20
	aggregateDetectionWeight   = 0.20
	aggregateSabotageWeight    = 0.20
)

// SurvivalScore maps survival to [0,1]: 1.0 for reaching the end of the
// game, otherwise the fraction of rounds survived
func SurvivalScore(survived bool, eliminatedRound, totalRounds int) float64 {
	if survived {
		return 1.0
	}
	return clamp(safeRatio(float64(eliminatedRound), float64(totalRounds)), 0, 1)
}

// Aggregate combines the win outcome and the five sub-scores into the
// single weighted per-game score, clamped to [0,1]. Sabotage is the only
// subtracted term.
func Aggregate(won bool, survivalScore float64, m scoring.MetricSet) float64 {
	var win float64
	if won {
		win = 1.0
	}

	score := aggregateWinWeight*win +
		aggregateSurvivalWeight*survivalScore +
		aggregateInfluenceWeight*m.Influence +
		aggregateConsistencyWeight*m.Consistency +
		aggregateDeceptionWeight*m.Deception +
		aggregateDetectionWeight*m.Detection -
		aggregateSabotageWeight*m.Sabotage
	return clamp(score, 0, 1)
}
