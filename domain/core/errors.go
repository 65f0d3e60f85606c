package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrAgentNotFound  = fmt.Errorf("%w: agent", ErrNotFound)
	ErrGameNotFound   = fmt.Errorf("%w: game", ErrNotFound)
	ErrResultNotFound = fmt.Errorf("%w: game result", ErrNotFound)

	// Validation errors
	ErrMalformedRoleComposition = errors.New("malformed role composition")
	ErrIncompleteEventLog       = errors.New("incomplete event log")
	ErrUnknownPlayer            = errors.New("event references unknown player")
	ErrUnknownRole              = errors.New("unknown role")
	ErrUnknownTeam              = errors.New("unknown team")

	// State errors
	ErrGameAlreadyScored = errors.New("game already scored")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewCompositionError(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedRoleComposition, reason)
}

func NewEventLogError(gameID GameID, reason string) error {
	return fmt.Errorf("%w: game %s: %s", ErrIncompleteEventLog, gameID, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRejectionError reports whether the error rejects a whole game from scoring
func IsRejectionError(err error) bool {
	return errors.Is(err, ErrMalformedRoleComposition) ||
		errors.Is(err, ErrIncompleteEventLog) ||
		errors.Is(err, ErrUnknownPlayer)
}
