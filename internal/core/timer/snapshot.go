package timer

import (
	"fmt"

	"focustimer/internal/core/model"
)

// Snapshot is the read-only projection handed to presentation code.
type Snapshot struct {
	Mode       model.Mode
	Status     model.Status
	TimeLeft   int
	Sessions   int
	Goal       string
	Motivation string
}

// Display returns the remaining time as MM:SS.
func (snapshot Snapshot) Display() string {
	return FormatClock(snapshot.TimeLeft)
}

// Progress returns the elapsed fraction of the current phase.
func (snapshot Snapshot) Progress() float64 {
	return PhaseProgress(snapshot.Mode, snapshot.TimeLeft)
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PhaseProgress returns 1 - timeLeft/phaseLength clamped to [0,1].
func PhaseProgress(mode model.Mode, timeLeft int) float64 {
	total := model.PhaseSeconds(mode)
	if total <= 0 {
		return 1
	}
	progress := 1 - float64(timeLeft)/float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
