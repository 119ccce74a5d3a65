package types

import (
	"github.com/google/uuid"
)

// ScenarioID identifies a single scenario evaluation, used to correlate a
// recompute request with its log entries
type ScenarioID string

// NewScenarioID generates a new time-ordered ScenarioID
func NewScenarioID() ScenarioID {
	return ScenarioID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of ScenarioID
func (s ScenarioID) String() string {
	return string(s)
}
