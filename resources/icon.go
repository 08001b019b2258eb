// Package resources renders the application icons.
package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"focustimer/internal/core/model"

	"fyne.io/fyne/v2"
)

const iconSide = 64

var (
	focusFill  = color.NRGBA{R: 229, G: 83, B: 61, A: 255}
	breakFill  = color.NRGBA{R: 47, G: 158, B: 68, A: 255}
	pausedFill = color.NRGBA{R: 134, G: 142, B: 150, A: 255}
)

var iconCache sync.Map

// Icon returns the tray/app icon for the given mode and status.
func Icon(mode model.Mode, status model.Status) fyne.Resource {
	fill := focusFill
	name := "focus"
	switch {
	case status == model.StatusPaused:
		fill, name = pausedFill, "paused"
	case mode == model.ModeBreak:
		fill, name = breakFill, "break"
	}

	if cached, ok := iconCache.Load(name); ok {
		return cached.(fyne.Resource)
	}
	data, err := renderDisc(fill)
	if err != nil {
		panic(fmt.Errorf("render %s icon: %w", name, err))
	}
	resource := fyne.NewStaticResource("icon-"+name+".png", data)
	iconCache.Store(name, resource)
	return resource
}

func renderDisc(fill color.NRGBA) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, iconSide, iconSide))
	center := float64(iconSide-1) / 2
	radius := float64(iconSide)/2 - 2
	for y := 0; y < iconSide; y++ {
		for x := 0; x < iconSide; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
