package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"focustimer/internal/audio"
	"focustimer/internal/core/model"
	"focustimer/internal/core/timer"
	"focustimer/internal/logger"
	"focustimer/internal/platform"
	"focustimer/internal/settings"
	"focustimer/internal/storage"
	"focustimer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

const appName = "FocusTimer"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: focustimer-tui [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n  %s  debug|info|warn|error\n  %s   write logs to this file\n", settings.EnvLogLevel, settings.EnvLogFile)
	}
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := settings.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	prefs, err := storage.LoadSettings(appName)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	prefs = prefs.WithEnv()

	log, closeLog, err := openLogger(prefs.LogLevel, os.Getenv(settings.EnvLogFile))
	if err != nil {
		return err
	}
	defer closeLog()

	engine := timer.New(timer.Config{TickInterval: model.DefaultTickInterval, Logger: log.SugaredLogger})
	defer engine.Close()

	cleanup, err := settings.Install(engine, prefs, audio.NewPlayer(), audio.Bell{Out: os.Stdout})
	if err != nil {
		return fmt.Errorf("install settings: %w", err)
	}
	defer cleanup()

	program := tea.NewProgram(tui.New(engine, engine.Subscribe(64)), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	log.Infow("terminal ui closed", "sessions", engine.Snapshot().Sessions)
	return nil
}

// openLogger writes to path when set; the terminal belongs to the UI.
func openLogger(level, path string) (*logger.Logger, func(), error) {
	if path == "" {
		return logger.New(level, io.Discard), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logger.New(level, file)
	return log, func() {
		_ = log.Sync()
		_ = file.Close()
	}, nil
}
