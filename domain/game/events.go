package game

// PlayerName is the in-game seat name of a participant (e.g. "Player_3").
// Agent identity is resolved through GameRecord.Participants.
type PlayerName string

// EliminationCause distinguishes day-vote eliminations from night kills
type EliminationCause string

const (
	CauseVote EliminationCause = "vote"
	CauseKill EliminationCause = "kill"
)

// EventKind discriminates the closed set of event types in a game log
type EventKind string

const (
	EventVote          EventKind = "vote"
	EventDebateTurn    EventKind = "debate_turn"
	EventAccusation    EventKind = "accusation"
	EventElimination   EventKind = "elimination"
	EventInvestigation EventKind = "investigation"
	EventProtection    EventKind = "protection"
	EventSuspicion     EventKind = "suspicion"
)

// Event is one typed entry in a finalized game log. Exactly the fields for
// its Kind are populated; everything else stays zero.
type Event struct {
	Kind  EventKind `json:"kind"`
	Round int       `json:"round"`

	// Vote
	Voter      PlayerName `json:"voter,omitempty"`
	VoteTarget PlayerName `json:"vote_target,omitempty"`

	// DebateTurn
	Speaker PlayerName `json:"speaker,omitempty"`

	// Accusation
	Accuser    PlayerName `json:"accuser,omitempty"`
	Accused    PlayerName `json:"accused,omitempty"`
	Successful bool       `json:"successful,omitempty"`

	// Elimination. Actor is set for kills (the werewolf that struck) and
	// empty for vote eliminations.
	Victim PlayerName       `json:"victim,omitempty"`
	Cause  EliminationCause `json:"cause,omitempty"`
	Actor  PlayerName       `json:"actor,omitempty"`

	// Investigation
	Investigator  PlayerName `json:"investigator,omitempty"`
	Target        PlayerName `json:"target,omitempty"`
	FoundWerewolf bool       `json:"found_werewolf,omitempty"`

	// Protection
	Protector PlayerName `json:"protector,omitempty"`
	Protected PlayerName `json:"protected,omitempty"`

	// Suspicion directed at a player; Correct reports whether the
	// suspicion matched the suspect's real team.
	Suspect PlayerName `json:"suspect,omitempty"`
	Correct bool       `json:"correct,omitempty"`
}

// NewVote records a day vote against a target
func NewVote(voter, target PlayerName, round int) Event {
	return Event{Kind: EventVote, Round: round, Voter: voter, VoteTarget: target}
}

// NewDebateTurn records a debate turn taken by a speaker
func NewDebateTurn(speaker PlayerName, round int) Event {
	return Event{Kind: EventDebateTurn, Round: round, Speaker: speaker}
}

// NewAccusation records an accusation and whether it stuck
func NewAccusation(accuser, accused PlayerName, round int, successful bool) Event {
	return Event{Kind: EventAccusation, Round: round, Accuser: accuser, Accused: accused, Successful: successful}
}

// NewVoteElimination records a day-vote elimination
func NewVoteElimination(victim PlayerName, round int) Event {
	return Event{Kind: EventElimination, Round: round, Victim: victim, Cause: CauseVote}
}

// NewKill records a night kill by a werewolf
func NewKill(actor, victim PlayerName, round int) Event {
	return Event{Kind: EventElimination, Round: round, Victim: victim, Cause: CauseKill, Actor: actor}
}

// NewInvestigation records a seer investigation result
func NewInvestigation(investigator, target PlayerName, round int, foundWerewolf bool) Event {
	return Event{Kind: EventInvestigation, Round: round, Investigator: investigator, Target: target, FoundWerewolf: foundWerewolf}
}

// NewProtection records a doctor protection attempt
func NewProtection(protector, protected PlayerName, round int, successful bool) Event {
	return Event{Kind: EventProtection, Round: round, Protector: protector, Protected: protected, Successful: successful}
}

// NewSuspicion records suspicion voiced against a player
func NewSuspicion(suspect PlayerName, round int, correct bool) Event {
	return Event{Kind: EventSuspicion, Round: round, Suspect: suspect, Correct: correct}
}

// actors returns every player referenced by the event, for validation
func (e Event) actors() []PlayerName {
	var names []PlayerName
	for _, n := range []PlayerName{
		e.Voter, e.VoteTarget, e.Speaker, e.Accuser, e.Accused,
		e.Victim, e.Actor, e.Investigator, e.Target, e.Protector,
		e.Protected, e.Suspect,
	} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
