package game

import (
	"fmt"

	"wolfboard/domain/core"
)

// Role is one of the fixed werewolf game roles
type Role string

const (
	RoleWerewolf Role = "werewolf" // deceptive team, 2 per game
	RoleSeer     Role = "seer"     // villager team, investigates one player per night
	RoleDoctor   Role = "doctor"   // villager team, protects one player per night
	RoleVillager Role = "villager" // villager team, 4 per game
)

// Team is one of the two opposing factions
type Team string

const (
	TeamWerewolves Team = "werewolves"
	TeamVillagers  Team = "villagers"
)

// Capability marks which metric branch applies to a role
type Capability string

const (
	CapabilityDeception Capability = "deception" // werewolves
	CapabilityDetection Capability = "detection" // seer, doctor, villagers
)

// PlayerCount is the fixed number of participants per game
const PlayerCount = 8

// requiredComposition is the exact role multiset every scored game must carry
var requiredComposition = map[Role]int{
	RoleWerewolf: 2,
	RoleSeer:     1,
	RoleDoctor:   1,
	RoleVillager: 4,
}

// TeamOf returns the team a role belongs to
func (r Role) TeamOf() (Team, error) {
	switch r {
	case RoleWerewolf:
		return TeamWerewolves, nil
	case RoleSeer, RoleDoctor, RoleVillager:
		return TeamVillagers, nil
	default:
		return "", fmt.Errorf("%w: %s", core.ErrUnknownRole, r)
	}
}

// CapabilityOf returns the metric capability of a role
func (r Role) CapabilityOf() (Capability, error) {
	switch r {
	case RoleWerewolf:
		return CapabilityDeception, nil
	case RoleSeer, RoleDoctor, RoleVillager:
		return CapabilityDetection, nil
	default:
		return "", fmt.Errorf("%w: %s", core.ErrUnknownRole, r)
	}
}

// IsValid reports whether the role is part of the fixed taxonomy
func (r Role) IsValid() bool {
	_, ok := requiredComposition[r]
	return ok
}

// Opponent returns the opposing team
func (t Team) Opponent() Team {
	if t == TeamWerewolves {
		return TeamVillagers
	}
	return TeamWerewolves
}

// IsValid reports whether the team identifier is known
func (t Team) IsValid() bool {
	return t == TeamWerewolves || t == TeamVillagers
}

// ValidateComposition checks that the role assignment is exactly
// {2 werewolf, 1 seer, 1 doctor, 4 villager}
func ValidateComposition(roles []Role) error {
	if len(roles) != PlayerCount {
		return core.NewCompositionError(
			fmt.Sprintf("expected %d participants, got %d", PlayerCount, len(roles)))
	}

	counts := make(map[Role]int, len(requiredComposition))
	for _, r := range roles {
		if !r.IsValid() {
			return core.NewCompositionError(fmt.Sprintf("unknown role %q", r))
		}
		counts[r]++
	}
	for role, want := range requiredComposition {
		if counts[role] != want {
			return core.NewCompositionError(
				fmt.Sprintf("expected %d %s, got %d", want, role, counts[role]))
		}
	}
	return nil
}
