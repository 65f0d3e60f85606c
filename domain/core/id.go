package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	GameID   ID
	AgentID  ID
	ResultID ID
)

// String conversions for domain IDs
func (id GameID) String() string   { return ID(id).String() }
func (id AgentID) String() string  { return ID(id).String() }
func (id ResultID) String() string { return ID(id).String() }

// IsEmpty checks for domain IDs
func (id GameID) IsEmpty() bool   { return ID(id).IsEmpty() }
func (id AgentID) IsEmpty() bool  { return ID(id).IsEmpty() }
func (id ResultID) IsEmpty() bool { return ID(id).IsEmpty() }

// ParseGameID parses a string into GameID
func ParseGameID(s string) (GameID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("game ID cannot be empty")
	}
	return GameID(s), nil
}

// ParseAgentID parses a string into AgentID
func ParseAgentID(s string) (AgentID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("agent ID cannot be empty")
	}
	return AgentID(s), nil
}
