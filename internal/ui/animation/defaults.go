package animation

import "time"

// DefaultConfig returns the phase-completion flash timing.
func DefaultConfig() Config {
	return Config{
		Flashes: 3,
		On: Range{
			Min: 180 * time.Millisecond,
			Max: 220 * time.Millisecond,
		},
		Off: Range{
			Min: 120 * time.Millisecond,
			Max: 160 * time.Millisecond,
		},
	}
}
