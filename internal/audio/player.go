package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// playTimeout bounds a single playback.
const playTimeout = 10 * time.Second

// ErrNoPlayer indicates no audio player is available on this system.
var ErrNoPlayer = errors.New("no audio player available")

// Player plays a WAV file. Play blocks until playback ends and returns
// the player's exit error.
type Player interface {
	Play(path string) error
}

// NewPlayer returns a platform-specific player.
func NewPlayer() Player {
	return newPlayer()
}

// commandPlayer runs an external program and waits for it to exit.
type commandPlayer struct {
	binary string
	args   func(path string) []string
}

func (player *commandPlayer) Play(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), playTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, player.binary, player.args(path)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		if len(output) > 0 {
			return fmt.Errorf("%s: %w: %s", player.binary, err, bytes.TrimSpace(output))
		}
		return fmt.Errorf("%s: %w", player.binary, err)
	}
	return nil
}

type unsupportedPlayer struct{}

func (unsupportedPlayer) Play(string) error {
	return ErrNoPlayer
}

func lookupPlayer(candidates ...commandPlayer) Player {
	for _, candidate := range candidates {
		path, err := exec.LookPath(candidate.binary)
		if err != nil {
			continue
		}
		candidate.binary = path
		return &candidate
	}
	return unsupportedPlayer{}
}
