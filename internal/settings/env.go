package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"focustimer/internal/logger"

	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvLogLevel = "FOCUSTIMER_LOG_LEVEL"
	EnvLogFile  = "FOCUSTIMER_LOG_FILE"
)

// LoadDotEnv loads path into the environment. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// WithEnv applies environment overrides on top of settings.
func (settings Settings) WithEnv() Settings {
	if level := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))); logger.Valid(level) {
		settings.LogLevel = level
	}
	return settings
}
