package model

import "time"

// Mode is the current timer phase.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// Status is the lifecycle state of the countdown.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// Phase lengths in seconds.
const (
	FocusSeconds = 25 * 60
	BreakSeconds = 5 * 60
)

// DefaultTickInterval is the wall-clock length of one countdown second.
const DefaultTickInterval = time.Second

// PhaseSeconds returns the full length of the given phase.
func PhaseSeconds(mode Mode) int {
	if mode == ModeBreak {
		return BreakSeconds
	}
	return FocusSeconds
}

// Title returns a human label for the mode.
func (mode Mode) Title() string {
	if mode == ModeBreak {
		return "Break"
	}
	return "Focus"
}
