package tray

import (
	"fmt"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Focus Timer"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	status     string
	toggle     string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    "Focus 25:00",
		toggle:    "Start",
	}
	manager.refreshMenu()
	return manager
}

// SetSnapshot updates the status line and the start/pause entry.
func (manager *Manager) SetSnapshot(snapshot timer.Snapshot) {
	status := StatusText(snapshot)
	toggle := ToggleLabel(snapshot.Status)
	if status == manager.status && toggle == manager.toggle {
		return
	}
	manager.status = status
	manager.toggle = toggle
	manager.refreshMenu()
}

// StatusText renders the tray status line for snapshot.
func StatusText(snapshot timer.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.Mode.Title(), snapshot.Display())
	if snapshot.Status == model.StatusPaused {
		status += " (paused)"
	}
	return status
}

// ToggleLabel returns the label of the start/pause entry.
func ToggleLabel(status model.Status) string {
	switch status {
	case model.StatusRunning:
		return "Pause"
	case model.StatusPaused:
		return "Resume"
	default:
		return "Start"
	}
}

func (manager *Manager) refreshMenu() {
	manager.statusItem = fyne.NewMenuItem(manager.status, nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem(manager.toggle, call(&manager.callbacks.OnToggle))

	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", call(&manager.callbacks.OnShow)),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", call(&manager.callbacks.OnReset)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", call(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", call(&manager.callbacks.OnQuit)),
	))
}

func call(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
