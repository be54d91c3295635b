package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData is a full-screen overlay whose alpha is driven by a tween.
type FadeData struct {
	Tween  *gween.Tween
	Alpha  float32
	Color  color.RGBA
	Active bool
}

var Fade = donburi.NewComponentType[FadeData]()
