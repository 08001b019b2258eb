package preferences

import (
	"fmt"

	"focustimer/internal/settings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    settings.Settings
	onSave      func(settings.Settings)
	onTest      func(settings.Settings)
	chime       *widget.Check
	volume      *widget.Slider
	volumeLabel *widget.Label
	motivation  *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, current settings.Settings, onSave func(settings.Settings)) *Window {
	window := app.NewWindow("Focus Timer Settings")

	chime := widget.NewCheck("Play a chime when a phase ends", nil)
	volumeLabel := widget.NewLabel("")
	volume := widget.NewSlider(settings.MinVolume, settings.MaxVolume)
	volume.Step = 0.05
	motivation := widget.NewCheck("Show a motivational message when focus starts", nil)

	prefs := &Window{
		window:      window,
		settings:    current,
		onSave:      onSave,
		chime:       chime,
		volume:      volume,
		volumeLabel: volumeLabel,
		motivation:  motivation,
	}
	volume.OnChanged = prefs.updateVolumeLabel
	prefs.UpdateSettings(current)

	testButton := widget.NewButton("Test chime", func() {
		if prefs.onTest != nil {
			prefs.onTest(prefs.collect())
		}
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		chime,
		container.NewHBox(widget.NewLabel("Volume"), volumeLabel),
		volume,
		testButton,
		widget.NewLabelWithStyle("Motivation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		motivation,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(380, 300))

	return prefs
}

// SetOnTest sets the handler of the "Test chime" button.
func (prefs *Window) SetOnTest(handler func(settings.Settings)) {
	prefs.onTest = handler
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(current settings.Settings) {
	prefs.settings = current
	prefs.chime.SetChecked(current.ChimeEnabled)
	prefs.volume.SetValue(current.ChimeVolume)
	prefs.updateVolumeLabel(current.ChimeVolume)
	prefs.motivation.SetChecked(current.MotivationEnabled)
}

func (prefs *Window) collect() settings.Settings {
	current := prefs.settings
	current.ChimeEnabled = prefs.chime.Checked
	current.ChimeVolume = prefs.volume.Value
	current.MotivationEnabled = prefs.motivation.Checked
	return current
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) updateVolumeLabel(value float64) {
	prefs.volumeLabel.SetText(fmt.Sprintf("%d%%", int(value*100+0.5)))
}
