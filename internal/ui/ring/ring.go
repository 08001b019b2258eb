// Package ring draws the circular countdown indicator.
package ring

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	defaultSegments = 60
	minSide         = float32(220)
	labelSize       = float32(40)
)

var (
	defaultTrack     = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	defaultHighlight = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Ring is a segmented circular progress widget with a centered label.
type Ring struct {
	widget.BaseWidget

	progress  float64
	label     string
	active    color.Color
	track     color.Color
	highlight bool
	segments  int
}

// New creates a ring with the given number of segments.
func New(segments int, active color.Color) *Ring {
	if segments <= 0 {
		segments = defaultSegments
	}
	ring := &Ring{
		label:    "--:--",
		active:   active,
		track:    defaultTrack,
		segments: segments,
	}
	ring.ExtendBaseWidget(ring)
	return ring
}

// SetProgress sets the filled fraction, clamped to [0,1].
func (ring *Ring) SetProgress(progress float64) {
	ring.progress = math.Max(0, math.Min(1, progress))
	ring.Refresh()
}

// SetLabel sets the centered text.
func (ring *Ring) SetLabel(label string) {
	ring.label = label
	ring.Refresh()
}

// SetColor sets the color of filled segments and the label.
func (ring *Ring) SetColor(active color.Color) {
	ring.active = active
	ring.Refresh()
}

// SetHighlight paints every segment in the highlight color while on.
func (ring *Ring) SetHighlight(on bool) {
	ring.highlight = on
	ring.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (ring *Ring) CreateRenderer() fyne.WidgetRenderer {
	lines := make([]*canvas.Line, ring.segments)
	objects := make([]fyne.CanvasObject, 0, ring.segments+1)
	for i := range lines {
		lines[i] = canvas.NewLine(ring.track)
		lines[i].StrokeWidth = 4
		objects = append(objects, lines[i])
	}
	label := canvas.NewText(ring.label, ring.active)
	label.TextSize = labelSize
	label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	objects = append(objects, label)

	renderer := &ringRenderer{ring: ring, lines: lines, label: label, objects: objects}
	renderer.Refresh()
	return renderer
}

// ActiveSegments returns how many of segments are filled at progress.
func ActiveSegments(progress float64, segments int) int {
	if segments <= 0 {
		return 0
	}
	count := int(math.Round(progress * float64(segments)))
	if count < 0 {
		return 0
	}
	if count > segments {
		return segments
	}
	return count
}

type ringRenderer struct {
	ring    *Ring
	lines   []*canvas.Line
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (renderer *ringRenderer) Layout(size fyne.Size) {
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	centerX := size.Width / 2
	centerY := size.Height / 2
	outer := side/2 - 4
	inner := outer * 0.82

	count := len(renderer.lines)
	for i, line := range renderer.lines {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(count)
		cos := float32(math.Cos(angle))
		sin := float32(math.Sin(angle))
		line.Position1 = fyne.NewPos(centerX+cos*inner, centerY+sin*inner)
		line.Position2 = fyne.NewPos(centerX+cos*outer, centerY+sin*outer)
	}

	textSize := renderer.label.MinSize()
	renderer.label.Move(fyne.NewPos(centerX-textSize.Width/2, centerY-textSize.Height/2))
	renderer.label.Resize(textSize)
}

func (renderer *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minSide, minSide)
}

func (renderer *ringRenderer) Refresh() {
	ring := renderer.ring
	filled := ActiveSegments(ring.progress, len(renderer.lines))
	for i, line := range renderer.lines {
		switch {
		case ring.highlight:
			line.StrokeColor = defaultHighlight
		case i < filled:
			line.StrokeColor = ring.active
		default:
			line.StrokeColor = ring.track
		}
		line.Refresh()
	}
	renderer.label.Text = ring.label
	renderer.label.Color = ring.active
	renderer.label.Refresh()
	renderer.Layout(ring.Size())
}

func (renderer *ringRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *ringRenderer) Destroy() {}
