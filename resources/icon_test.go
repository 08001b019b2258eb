package resources

import (
	"bytes"
	"image/png"
	"testing"

	"focustimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconIsCachedPNG(t *testing.T) {
	first := Icon(model.ModeFocus, model.StatusIdle)
	assert.Same(t, first, Icon(model.ModeFocus, model.StatusRunning))

	img, err := png.Decode(bytes.NewReader(first.Content()))
	require.NoError(t, err)
	assert.Equal(t, iconSide, img.Bounds().Dx())

	_, _, _, alpha := img.At(0, 0).RGBA()
	assert.Zero(t, alpha)
	r, _, _, _ := img.At(iconSide/2, iconSide/2).RGBA()
	assert.Equal(t, uint32(focusFill.R)*0x101, r)
}

func TestIconVariants(t *testing.T) {
	assert.Equal(t, "icon-break.png", Icon(model.ModeBreak, model.StatusRunning).Name())
	assert.Equal(t, "icon-paused.png", Icon(model.ModeBreak, model.StatusPaused).Name())
	assert.Equal(t, "icon-focus.png", Icon(model.ModeFocus, model.StatusIdle).Name())
}
