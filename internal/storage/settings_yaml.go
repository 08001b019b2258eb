package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"focustimer/internal/logger"
	"focustimer/internal/settings"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	ChimeEnabled      *bool    `yaml:"chime_enabled,omitempty"`
	ChimeVolume       float64  `yaml:"chime_volume,omitempty"`
	MotivationEnabled *bool    `yaml:"motivation_enabled,omitempty"`
	Templates         []string `yaml:"motivation_templates,omitempty"`
	LogLevel          string   `yaml:"log_level,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (settings.Settings, error) {
	prefs := settings.DefaultSettings()
	configPath, err := SettingsPath(appName)
	if err != nil {
		return prefs, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return prefs, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&prefs, fileData)
	return prefs, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, prefs settings.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		ChimeEnabled:      &prefs.ChimeEnabled,
		ChimeVolume:       prefs.ChimeVolume,
		MotivationEnabled: &prefs.MotivationEnabled,
		Templates:         prefs.Templates,
		LogLevel:          prefs.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(prefs *settings.Settings, fileData yamlSettings) {
	if fileData.ChimeEnabled != nil {
		prefs.ChimeEnabled = *fileData.ChimeEnabled
	}
	if fileData.ChimeVolume >= settings.MinVolume && fileData.ChimeVolume <= settings.MaxVolume {
		prefs.ChimeVolume = fileData.ChimeVolume
	}
	if fileData.MotivationEnabled != nil {
		prefs.MotivationEnabled = *fileData.MotivationEnabled
	}

	templates := make([]string, 0, len(fileData.Templates))
	for _, template := range fileData.Templates {
		if strings.TrimSpace(template) != "" {
			templates = append(templates, template)
		}
	}
	if len(templates) > 0 {
		prefs.Templates = templates
	}

	if level := strings.ToLower(strings.TrimSpace(fileData.LogLevel)); logger.Valid(level) {
		prefs.LogLevel = level
	}
}
