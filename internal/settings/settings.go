// Package settings holds user preferences and installs them on a timer.
package settings

import (
	"fmt"
	"math/rand"
	"time"

	"focustimer/internal/audio"
	"focustimer/internal/core/motivation"
	"focustimer/internal/core/timer"
	"focustimer/internal/logger"
)

// Volume bounds accepted from the settings file.
const (
	MinVolume = 0.1
	MaxVolume = 1.0
)

// Settings defines editable user preferences.
type Settings struct {
	ChimeEnabled      bool
	ChimeVolume       float64
	MotivationEnabled bool
	Templates         []string
	LogLevel          string
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		ChimeEnabled:      true,
		ChimeVolume:       1.0,
		MotivationEnabled: true,
		LogLevel:          logger.InfoLevel,
	}
}

// EffectiveTemplates returns the custom templates or the built-in ones.
func (settings Settings) EffectiveTemplates() []string {
	if len(settings.Templates) > 0 {
		return settings.Templates
	}
	return motivation.DefaultTemplates
}

// Install sets the engine's sound signal and message picker from
// settings. Fallbacks are tried after the chime. The returned cleanup
// removes temporary audio files.
func Install(engine *timer.Engine, settings Settings, player audio.Player, fallbacks ...audio.Signal) (func(), error) {
	cleanup := func() {}

	var picker timer.MessagePicker
	if settings.MotivationEnabled {
		built, err := motivation.NewPicker(settings.EffectiveTemplates(), rand.New(rand.NewSource(time.Now().UnixNano())))
		if err != nil {
			return cleanup, fmt.Errorf("build message picker: %w", err)
		}
		picker = built
	}

	var signal timer.SoundSignal
	if settings.ChimeEnabled {
		chime := audio.NewChime(player, settings.ChimeVolume)
		signal = audio.Fallback(append([]audio.Signal{chime}, fallbacks...)...)
		cleanup = func() { _ = chime.Close() }
	}

	engine.SetMotivator(picker)
	engine.SetSignal(signal)
	return cleanup, nil
}
