package scoring

import (
	"math"
	"testing"

	"wolfboard/domain/game"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCalculate_BoundsForAllRoles(t *testing.T) {
	calc := NewCalculator()
	extreme := &PlayerStats{
		Debates:                20,
		Accusations:            10,
		SuccessfulAccusations:  10,
		Votes:                  12,
		CorrectVotes:           12,
		WrongTeamVotes:         6,
		VotesAgainst:           30,
		SabotageActions:        9,
		Kills:                  7,
		OpponentKills:          7,
		Investigations:         5,
		WerewolvesFound:        5,
		Protections:            4,
		SuccessfulProtections:  4,
		SuspicionsAgainst:      6,
		FalseSuspicionsAgainst: 6,
		Survived:               true,
	}

	for _, role := range []game.Role{game.RoleWerewolf, game.RoleSeer, game.RoleDoctor, game.RoleVillager} {
		for _, stats := range []*PlayerStats{{}, extreme} {
			m := calc.Calculate(stats, role, game.PlayerCount)
			for name, v := range map[string]float64{
				"influence":   m.Influence,
				"consistency": m.Consistency,
				"sabotage":    m.Sabotage,
				"detection":   m.Detection,
				"deception":   m.Deception,
			} {
				if v < 0 || v > 1 {
					t.Errorf("Role %s: %s out of [0,1]: %f", role, name, v)
				}
			}
		}
	}
}

func TestCalculate_CapabilityGating(t *testing.T) {
	calc := NewCalculator()
	stats := &PlayerStats{
		Votes:                  4,
		CorrectVotes:           4,
		Accusations:            2,
		SuccessfulAccusations:  2,
		Kills:                  2,
		OpponentKills:          2,
		SuspicionsAgainst:      2,
		FalseSuspicionsAgainst: 2,
		Survived:               true,
	}

	wolf := calc.Calculate(stats, game.RoleWerewolf, game.PlayerCount)
	if wolf.Detection != 0 {
		t.Errorf("Werewolf detection must be 0, got %f", wolf.Detection)
	}
	if wolf.Deception == 0 {
		t.Error("Werewolf with kills and false suspicions should have nonzero deception")
	}

	for _, role := range []game.Role{game.RoleSeer, game.RoleDoctor, game.RoleVillager} {
		m := calc.Calculate(stats, role, game.PlayerCount)
		if m.Deception != 0 {
			t.Errorf("Role %s deception must be 0, got %f", role, m.Deception)
		}
		if m.Detection == 0 {
			t.Errorf("Role %s with correct votes should have nonzero detection", role)
		}
	}
}

func TestInfluence(t *testing.T) {
	calc := NewCalculator()

	// 5 debates saturate the debate term, 2 successful accusations hit the
	// accusation cap, no votes against keeps the target term at full weight.
	m := calc.Calculate(&PlayerStats{Debates: 5, SuccessfulAccusations: 2}, game.RoleVillager, game.PlayerCount)
	if !almostEqual(m.Influence, 0.79) {
		t.Errorf("Expected influence 0.79, got %f", m.Influence)
	}

	// A silent, untargeted player still earns the full target term.
	m = calc.Calculate(&PlayerStats{}, game.RoleVillager, game.PlayerCount)
	if !almostEqual(m.Influence, 0.3) {
		t.Errorf("Expected influence 0.3 for empty stats, got %f", m.Influence)
	}

	// 16 votes against wipes out the target term at 8 players.
	m = calc.Calculate(&PlayerStats{VotesAgainst: 16}, game.RoleVillager, game.PlayerCount)
	if !almostEqual(m.Influence, 0.0) {
		t.Errorf("Expected influence 0 when fully targeted, got %f", m.Influence)
	}
}

func TestConsistency(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		name  string
		stats *PlayerStats
		role  game.Role
		want  float64
	}{
		{"neutral baseline", &PlayerStats{}, game.RoleVillager, 0.5},
		{"two wrong votes", &PlayerStats{WrongTeamVotes: 2}, game.RoleVillager, 0.3},
		{"wrong votes capped at three", &PlayerStats{WrongTeamVotes: 5}, game.RoleVillager, 0.2},
		{"villager voted out a werewolf", &PlayerStats{CorrectVotes: 1}, game.RoleVillager, 0.7},
		{"werewolf landed a kill", &PlayerStats{OpponentKills: 1}, game.RoleWerewolf, 0.7},
		{"werewolf correct votes alone earn no bonus", &PlayerStats{CorrectVotes: 2}, game.RoleWerewolf, 0.5},
	}

	for _, tc := range cases {
		m := calc.Calculate(tc.stats, tc.role, game.PlayerCount)
		if !almostEqual(m.Consistency, tc.want) {
			t.Errorf("%s: expected consistency %f, got %f", tc.name, tc.want, m.Consistency)
		}
	}
}

func TestSabotage(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		actions int
		want    float64
	}{
		{0, 0.0},
		{1, 0.25},
		{2, 0.5},
		{4, 1.0},
		{7, 1.0},
	}
	for _, tc := range cases {
		m := calc.Calculate(&PlayerStats{SabotageActions: tc.actions}, game.RoleVillager, game.PlayerCount)
		if !almostEqual(m.Sabotage, tc.want) {
			t.Errorf("%d sabotage actions: expected %f, got %f", tc.actions, tc.want, m.Sabotage)
		}
	}
}

func TestDetection_RoleBonuses(t *testing.T) {
	calc := NewCalculator()

	// Seer with a perfect investigation record.
	seer := calc.Calculate(&PlayerStats{Investigations: 2, WerewolvesFound: 2}, game.RoleSeer, game.PlayerCount)
	if !almostEqual(seer.Detection, 0.3) {
		t.Errorf("Expected seer detection 0.3, got %f", seer.Detection)
	}

	// Doctor with one successful protection out of two.
	doctor := calc.Calculate(&PlayerStats{Protections: 2, SuccessfulProtections: 1}, game.RoleDoctor, game.PlayerCount)
	if !almostEqual(doctor.Detection, 0.15) {
		t.Errorf("Expected doctor detection 0.15, got %f", doctor.Detection)
	}

	// Plain villager bonus depends on survival only.
	alive := calc.Calculate(&PlayerStats{Survived: true}, game.RoleVillager, game.PlayerCount)
	if !almostEqual(alive.Detection, 0.06) {
		t.Errorf("Expected surviving villager detection 0.06, got %f", alive.Detection)
	}
	dead := calc.Calculate(&PlayerStats{}, game.RoleVillager, game.PlayerCount)
	if !almostEqual(dead.Detection, 0.03) {
		t.Errorf("Expected eliminated villager detection 0.03, got %f", dead.Detection)
	}

	// Mixed voting record.
	villager := calc.Calculate(&PlayerStats{
		Votes:                 4,
		CorrectVotes:          2,
		Accusations:           2,
		SuccessfulAccusations: 1,
		Survived:              true,
	}, game.RoleVillager, game.PlayerCount)
	if !almostEqual(villager.Detection, 0.41) {
		t.Errorf("Expected villager detection 0.41, got %f", villager.Detection)
	}
}

func TestDeception(t *testing.T) {
	calc := NewCalculator()

	m := calc.Calculate(&PlayerStats{
		Survived:               true,
		SuspicionsAgainst:      2,
		FalseSuspicionsAgainst: 1,
		Kills:                  2,
		OpponentKills:          2,
	}, game.RoleWerewolf, game.PlayerCount)
	if !almostEqual(m.Deception, 0.75) {
		t.Errorf("Expected deception 0.75, got %f", m.Deception)
	}

	// Kill credit caps at 0.3 regardless of body count.
	capped := calc.Calculate(&PlayerStats{
		Survived:               true,
		SuspicionsAgainst:      2,
		FalseSuspicionsAgainst: 1,
		Kills:                  5,
		OpponentKills:          5,
	}, game.RoleWerewolf, game.PlayerCount)
	if !almostEqual(capped.Deception, 0.85) {
		t.Errorf("Expected capped deception 0.85, got %f", capped.Deception)
	}

	// Eliminated early with nothing to show for it.
	empty := calc.Calculate(&PlayerStats{}, game.RoleWerewolf, game.PlayerCount)
	if !almostEqual(empty.Deception, 0.0) {
		t.Errorf("Expected deception 0 for empty stats, got %f", empty.Deception)
	}
}

func TestSafeRatio(t *testing.T) {
	if got := safeRatio(3, 0); got != 0 {
		t.Errorf("Zero denominator must yield 0, got %f", got)
	}
	if got := safeRatio(1, 4); !almostEqual(got, 0.25) {
		t.Errorf("Expected 0.25, got %f", got)
	}
}
