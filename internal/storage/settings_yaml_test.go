package storage

import (
	"os"
	"path/filepath"
	"testing"

	"focustimer/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testApp = "FocusTimerTest"

func writeSettingsFile(t *testing.T, content string) {
	t.Helper()
	path, err := SettingsPath(testApp)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := LoadSettings(testApp)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultSettings(), prefs)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := settings.DefaultSettings()
	prefs.ChimeEnabled = false
	prefs.ChimeVolume = 0.4
	prefs.Templates = []string{"Finish {goal}"}
	prefs.LogLevel = "debug"
	require.NoError(t, SaveSettings(testApp, prefs))

	loaded, err := LoadSettings(testApp)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadSettingsIgnoresOutOfRangeValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeSettingsFile(t, `
chime_volume: 3.5
motivation_enabled: false
motivation_templates: ["", "   "]
log_level: trace
`)

	prefs, err := LoadSettings(testApp)
	require.NoError(t, err)

	defaults := settings.DefaultSettings()
	assert.Equal(t, defaults.ChimeVolume, prefs.ChimeVolume)
	assert.True(t, prefs.ChimeEnabled)
	assert.False(t, prefs.MotivationEnabled)
	assert.Empty(t, prefs.Templates)
	assert.Equal(t, defaults.LogLevel, prefs.LogLevel)
}

func TestLoadSettingsRejectsBrokenYAML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeSettingsFile(t, "chime_enabled: [unclosed")

	prefs, err := LoadSettings(testApp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, settings.DefaultSettings(), prefs)
}
