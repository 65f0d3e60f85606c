package game

import (
	"fmt"
	"sort"

	"wolfboard/domain/core"
)

// Participant binds a seat name to the agent occupying it and its role
type Participant struct {
	AgentID core.AgentID `json:"agent_id"`
	Role    Role         `json:"role"`
}

// GameRecord is one finalized game: the full input to scoring.
// Immutable once a game concludes; scoring never mutates it.
type GameRecord struct {
	GameID       core.GameID                `json:"game_id"`
	Participants map[PlayerName]Participant `json:"participants"`
	TotalRounds  int                        `json:"total_rounds"`
	Winner       Team                       `json:"winner"`
	Events       []Event                    `json:"events"`
}

// PlayerNames returns the seat names in deterministic order
func (g *GameRecord) PlayerNames() []PlayerName {
	names := make([]PlayerName, 0, len(g.Participants))
	for name := range g.Participants {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// RoleOf returns the role of a seat
func (g *GameRecord) RoleOf(name PlayerName) (Role, bool) {
	p, ok := g.Participants[name]
	return p.Role, ok
}

// TeamOf returns the team of a seat
func (g *GameRecord) TeamOf(name PlayerName) (Team, bool) {
	p, ok := g.Participants[name]
	if !ok {
		return "", false
	}
	team, err := p.Role.TeamOf()
	if err != nil {
		return "", false
	}
	return team, true
}

// EliminatedAt returns the round a player was eliminated in, or 0 if the
// player survived to the end of the game
func (g *GameRecord) EliminatedAt(name PlayerName) int {
	for _, e := range g.Events {
		if e.Kind == EventElimination && e.Victim == name {
			return e.Round
		}
	}
	return 0
}

// Survived reports whether a player reached the end of the game alive
func (g *GameRecord) Survived(name PlayerName) bool {
	return g.EliminatedAt(name) == 0
}

// Validate rejects the record unless it is a complete, scoreable game:
// exactly the required 8-role composition, a known winner, and an event log
// whose entries are well-formed and reference only known players.
// The whole game is rejected on the first violation; partial scoring is
// never attempted.
func (g *GameRecord) Validate() error {
	if g.GameID.IsEmpty() {
		return core.NewEventLogError(g.GameID, "missing game id")
	}

	roles := make([]Role, 0, len(g.Participants))
	for name, p := range g.Participants {
		if p.AgentID.IsEmpty() {
			return core.NewEventLogError(g.GameID, fmt.Sprintf("seat %s has no agent id", name))
		}
		roles = append(roles, p.Role)
	}
	if err := ValidateComposition(roles); err != nil {
		return err
	}

	if !g.Winner.IsValid() {
		return core.NewEventLogError(g.GameID, fmt.Sprintf("unknown winning team %q", g.Winner))
	}
	if g.TotalRounds < 1 {
		return core.NewEventLogError(g.GameID, fmt.Sprintf("total rounds must be >= 1, got %d", g.TotalRounds))
	}

	for i, e := range g.Events {
		if err := g.validateEvent(e); err != nil {
			return core.NewEventLogError(g.GameID, fmt.Sprintf("event %d (%s): %v", i, e.Kind, err))
		}
	}
	return nil
}

func (g *GameRecord) validateEvent(e Event) error {
	if e.Round < 1 || e.Round > g.TotalRounds {
		return fmt.Errorf("round %d outside [1,%d]", e.Round, g.TotalRounds)
	}
	for _, name := range e.actors() {
		if _, ok := g.Participants[name]; !ok {
			return fmt.Errorf("%w: %s", core.ErrUnknownPlayer, name)
		}
	}
	switch e.Kind {
	case EventVote:
		if e.Voter == "" || e.VoteTarget == "" {
			return fmt.Errorf("vote requires voter and target")
		}
	case EventDebateTurn:
		if e.Speaker == "" {
			return fmt.Errorf("debate turn requires speaker")
		}
	case EventAccusation:
		if e.Accuser == "" || e.Accused == "" {
			return fmt.Errorf("accusation requires accuser and accused")
		}
	case EventElimination:
		if e.Victim == "" {
			return fmt.Errorf("elimination requires victim")
		}
		if e.Cause != CauseVote && e.Cause != CauseKill {
			return fmt.Errorf("unknown elimination cause %q", e.Cause)
		}
		if e.Cause == CauseKill && e.Actor == "" {
			return fmt.Errorf("kill requires actor")
		}
	case EventInvestigation:
		if e.Investigator == "" || e.Target == "" {
			return fmt.Errorf("investigation requires investigator and target")
		}
	case EventProtection:
		if e.Protector == "" || e.Protected == "" {
			return fmt.Errorf("protection requires protector and protected")
		}
	case EventSuspicion:
		if e.Suspect == "" {
			return fmt.Errorf("suspicion requires suspect")
		}
	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
	return nil
}

// Fingerprint returns a deterministic hash of the record identity, used to
// detect duplicate submissions of the same finalized game
func (g *GameRecord) Fingerprint() core.Hash {
	data := fmt.Sprintf("%s|%s|%d|%d", g.GameID, g.Winner, g.TotalRounds, len(g.Events))
	return core.NewHash([]byte(data))
}
