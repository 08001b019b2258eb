package ring

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 229, G: 83, B: 61, A: 255}

func TestActiveSegments(t *testing.T) {
	assert.Equal(t, 0, ActiveSegments(0, 60))
	assert.Equal(t, 30, ActiveSegments(0.5, 60))
	assert.Equal(t, 60, ActiveSegments(1, 60))
	assert.Equal(t, 60, ActiveSegments(1.4, 60))
	assert.Equal(t, 0, ActiveSegments(-1, 60))
	assert.Equal(t, 0, ActiveSegments(0.5, 0))
}

func TestRendererColorsFollowProgress(t *testing.T) {
	test.NewTempApp(t)

	ring := New(10, red)
	ring.Resize(fyne.NewSize(240, 240))
	ring.SetProgress(0.3)
	ring.SetLabel("17:30")

	renderer, ok := test.WidgetRenderer(ring).(*ringRenderer)
	require.True(t, ok)

	filled := 0
	for _, line := range renderer.lines {
		if line.StrokeColor == color.Color(red) {
			filled++
		}
	}
	assert.Equal(t, 3, filled)
	assert.Equal(t, "17:30", renderer.label.Text)

	ring.SetHighlight(true)
	for _, line := range renderer.lines {
		assert.Equal(t, color.Color(defaultHighlight), line.StrokeColor)
	}
}

func TestMinSize(t *testing.T) {
	test.NewTempApp(t)
	assert.Equal(t, fyne.NewSize(minSide, minSide), New(0, red).MinSize())
}
