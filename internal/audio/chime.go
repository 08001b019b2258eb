package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrChimeClosed is returned by Play after Close.
var ErrChimeClosed = errors.New("chime closed")

// Chime plays a synthesized tone through a Player.
type Chime struct {
	player Player
	wav    []byte
	dir    string

	mu      sync.Mutex
	path    string
	playing int
	closed  bool
}

// NewChime renders the default chime at volume for player.
func NewChime(player Player, volume float64) *Chime {
	samples := Synthesize(DefaultChime(), DefaultSampleRate, volume)
	return &Chime{
		player: player,
		wav:    EncodeWAV(samples, DefaultSampleRate),
		dir:    os.TempDir(),
	}
}

// WAV returns the encoded chime.
func (chime *Chime) WAV() []byte {
	return chime.wav
}

// Play hands the rendered file to the player. The file outlives Close
// until the last in-flight Play returns.
func (chime *Chime) Play() error {
	if chime.player == nil {
		return ErrNoPlayer
	}

	chime.mu.Lock()
	if chime.closed {
		chime.mu.Unlock()
		return ErrChimeClosed
	}
	path, err := chime.fileLocked()
	if err != nil {
		chime.mu.Unlock()
		return err
	}
	chime.playing++
	chime.mu.Unlock()

	playErr := chime.player.Play(path)

	chime.mu.Lock()
	chime.playing--
	var removeErr error
	if chime.closed && chime.playing == 0 {
		removeErr = chime.removeLocked()
	}
	chime.mu.Unlock()

	if playErr != nil {
		return fmt.Errorf("play chime: %w", playErr)
	}
	return removeErr
}

// Close removes the rendered file and makes later Play calls fail.
func (chime *Chime) Close() error {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if chime.closed {
		return nil
	}
	chime.closed = true
	if chime.playing > 0 {
		return nil
	}
	return chime.removeLocked()
}

func (chime *Chime) fileLocked() (string, error) {
	if chime.path != "" {
		return chime.path, nil
	}
	file, err := os.CreateTemp(chime.dir, "focustimer-chime-*.wav")
	if err != nil {
		return "", fmt.Errorf("create chime file: %w", err)
	}
	defer file.Close()
	if _, err := file.Write(chime.wav); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("write chime file: %w", err)
	}
	chime.path = filepath.Clean(file.Name())
	return chime.path, nil
}

func (chime *Chime) removeLocked() error {
	if chime.path == "" {
		return nil
	}
	path := chime.path
	chime.path = ""
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove chime file: %w", err)
	}
	return nil
}
