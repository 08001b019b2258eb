package audio

import (
	"errors"
	"fmt"
	"io"
)

// Signal is a best-effort audible cue.
type Signal interface {
	Play() error
}

// Nop is a silent signal.
type Nop struct{}

// Play does nothing.
func (Nop) Play() error { return nil }

// Bell rings the terminal bell on its writer.
type Bell struct {
	Out io.Writer
}

// Play writes BEL.
func (bell Bell) Play() error {
	if bell.Out == nil {
		return errors.New("bell: no output")
	}
	if _, err := io.WriteString(bell.Out, "\a"); err != nil {
		return fmt.Errorf("bell: %w", err)
	}
	return nil
}

type fallback []Signal

// Fallback plays the first signal that succeeds.
func Fallback(signals ...Signal) Signal {
	return fallback(signals)
}

func (signals fallback) Play() error {
	var errs []error
	for _, signal := range signals {
		if signal == nil {
			continue
		}
		err := signal.Play()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
