package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"focustimer/internal/audio"
	"focustimer/internal/core/model"
	"focustimer/internal/core/timer"
	"focustimer/internal/logger"
	"focustimer/internal/platform"
	"focustimer/internal/settings"
	"focustimer/internal/storage"
	"focustimer/internal/ui/preferences"
	"focustimer/internal/ui/timerview"
	"focustimer/internal/ui/tray"
	"focustimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "FocusTimer"

func main() {
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := settings.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	prefs, loadErr := storage.LoadSettings(appName)
	prefs = prefs.WithEnv()
	log := logger.New(prefs.LogLevel, os.Stderr)
	defer func() {
		_ = log.Sync()
	}()
	if loadErr != nil {
		log.Warnw("using default settings", "err", loadErr)
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Infow("another timer is already running")
			return
		}
		log.Errorw("single instance", "err", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	engine := timer.New(timer.Config{TickInterval: model.DefaultTickInterval, Logger: log.SugaredLogger})
	defer engine.Close()

	player := audio.NewPlayer()
	cleanup, err := settings.Install(engine, prefs, player)
	if err != nil {
		log.Warnw("install settings", "err", err)
	}
	defer func() {
		cleanup()
	}()

	fyneApp := app.NewWithID("com.focustimer.app")
	fyneApp.SetIcon(resources.Icon(model.ModeFocus, model.StatusIdle))

	view := timerview.New(fyneApp, engine)
	defer view.Close()

	prefsWindow := preferences.New(fyneApp, prefs, func(updated settings.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Errorw("save settings", "err", err)
		}
		cleanup()
		next, err := settings.Install(engine, updated, player)
		if err != nil {
			log.Warnw("install settings", "err", err)
		}
		cleanup = next
	})
	prefsWindow.SetOnTest(func(current settings.Settings) {
		chime := audio.NewChime(player, current.ChimeVolume)
		go func() {
			defer func() {
				_ = chime.Close()
			}()
			if err := chime.Play(); err != nil {
				log.Debugw("test chime", "err", err)
			}
		}()
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnToggle:      func() { toggle(engine) },
			OnReset:       view.ResetTimer,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.Icon(model.ModeFocus, model.StatusIdle))
		view.SetOnClose(view.Hide)
	} else {
		log.Infow("system tray unsupported on this platform")
	}

	events := engine.Subscribe(16)
	go func() {
		var lastIcon fyne.Resource
		for event := range events {
			view.HandleEvent(event)
			if trayManager == nil {
				continue
			}
			snapshot := engine.Snapshot()
			icon := resources.Icon(snapshot.Mode, snapshot.Status)
			iconChanged := icon != lastIcon
			lastIcon = icon
			fyne.Do(func() {
				trayManager.SetSnapshot(snapshot)
				if iconChanged {
					desktopApp.SetSystemTrayIcon(icon)
				}
			})
		}
	}()

	view.Show()
	fyneApp.Run()
}

func toggle(engine *timer.Engine) {
	if engine.Snapshot().Status == model.StatusRunning {
		engine.Pause()
		return
	}
	engine.Start()
}
