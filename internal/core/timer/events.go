package timer

import (
	"time"

	"focustimer/internal/core/model"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventTick          EventType = "tick"
	EventPhaseComplete EventType = "phase_complete"
)

// Event is an engine update for observers. Snapshot reflects the state
// after the change; Completed is set for EventPhaseComplete.
type Event struct {
	Type      EventType
	Snapshot  Snapshot
	Completed model.Mode
	At        time.Time
}
