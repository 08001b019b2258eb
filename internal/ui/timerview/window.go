// Package timerview is the main desktop window of the focus timer.
package timerview

import (
	"context"
	"fmt"
	"image/color"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timer"
	"focustimer/internal/ui/animation"
	"focustimer/internal/ui/ring"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Phase colors.
var (
	FocusColor = color.NRGBA{R: 229, G: 83, B: 61, A: 255}
	BreakColor = color.NRGBA{R: 47, G: 158, B: 68, A: 255}
)

// Controller is the part of the timer engine the window drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	SetGoal(goal string)
	Snapshot() timer.Snapshot
}

// Window shows the countdown and wires buttons to the controller.
type Window struct {
	window      fyne.Window
	controller  Controller
	title       *canvas.Text
	ring        *ring.Ring
	sessions    *widget.Label
	goal        *widget.Entry
	motivation  *widget.Label
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	flash       *animation.Engine
	cancelFlash context.CancelFunc
}

// New creates the timer window.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("Focus Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	title := canvas.NewText("Focus", FocusColor)
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 22

	progressRing := ring.New(60, FocusColor)

	sessions := widget.NewLabel("")
	sessions.Alignment = fyne.TextAlignCenter

	goal := widget.NewEntry()
	goal.SetPlaceHolder("What are you focusing on?")

	motivation := widget.NewLabel("")
	motivation.Alignment = fyne.TextAlignCenter
	motivation.Wrapping = fyne.TextWrapWord
	motivation.TextStyle = fyne.TextStyle{Italic: true}

	view := &Window{
		window:      window,
		controller:  controller,
		title:       title,
		ring:        progressRing,
		sessions:    sessions,
		goal:        goal,
		motivation:  motivation,
		startButton: widget.NewButton("Start", controller.Start),
		pauseButton: widget.NewButton("Pause", controller.Pause),
	}
	view.resetButton = widget.NewButton("Reset", view.ResetTimer)
	view.startButton.Importance = widget.HighImportance
	goal.OnChanged = controller.SetGoal

	view.flash = animation.New(animation.DefaultConfig(), func(on bool) {
		fyne.Do(func() {
			view.ring.SetHighlight(on)
		})
	})

	buttons := container.NewHBox(layout.NewSpacer(), view.startButton, view.pauseButton, view.resetButton, layout.NewSpacer())
	content := container.NewVBox(
		title,
		container.NewCenter(progressRing),
		sessions,
		goal,
		motivation,
		buttons,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 520))

	view.apply(controller.Snapshot())
	return view
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetOnClose replaces the default close behavior.
func (view *Window) SetOnClose(handler func()) {
	view.window.SetCloseIntercept(handler)
}

// Hide hides the window without quitting.
func (view *Window) Hide() {
	view.window.Hide()
}

// HandleEvent refreshes the window from an engine event. Safe to call from
// any goroutine.
func (view *Window) HandleEvent(event timer.Event) {
	fyne.Do(func() {
		if event.Type == timer.EventPhaseComplete {
			view.startFlash()
		}
		view.apply(view.controller.Snapshot())
	})
}

// ResetTimer resets the controller and clears the goal entry. Call it on
// the UI goroutine.
func (view *Window) ResetTimer() {
	view.controller.Reset()
	view.goal.SetText("")
}

// Close stops animations.
func (view *Window) Close() {
	if view.cancelFlash != nil {
		view.cancelFlash()
		view.cancelFlash = nil
	}
	view.flash.Stop()
}

func (view *Window) startFlash() {
	if view.cancelFlash != nil {
		view.cancelFlash()
	}
	ctx, cancel := context.WithCancel(context.Background())
	view.cancelFlash = cancel
	view.flash.StartFlash(ctx)
}

func (view *Window) apply(snapshot timer.Snapshot) {
	accent := FocusColor
	if snapshot.Mode == model.ModeBreak {
		accent = BreakColor
	}

	view.title.Text = snapshot.Mode.Title()
	view.title.Color = accent
	view.title.Refresh()

	view.ring.SetColor(accent)
	view.ring.SetLabel(snapshot.Display())
	view.ring.SetProgress(snapshot.Progress())

	view.sessions.SetText(sessionsText(snapshot.Sessions))
	view.motivation.SetText(snapshot.Motivation)

	view.startButton.SetText(startLabel(snapshot.Status))
	if snapshot.Status == model.StatusRunning {
		view.startButton.Disable()
		view.pauseButton.Enable()
	} else {
		view.startButton.Enable()
		view.pauseButton.Disable()
	}
}

func sessionsText(sessions int) string {
	if sessions == 1 {
		return "1 session completed"
	}
	return fmt.Sprintf("%d sessions completed", sessions)
}

func startLabel(status model.Status) string {
	if status == model.StatusPaused {
		return "Resume"
	}
	return "Start"
}
