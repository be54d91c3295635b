package systems

import (
	"image/color"

	"github.com/automoto/hallownest/components"
	cfg "github.com/automoto/hallownest/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// TriggerFade restarts the overlay fully opaque, easing out to clear.
func TriggerFade(ecs *ecs.ECS) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	fade.Tween = gween.New(1, 0, cfg.Fade.Duration, ease.OutQuad)
	fade.Alpha = 1
	fade.Active = true
}

func UpdateFade(ecs *ecs.ECS) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if !fade.Active || fade.Tween == nil {
		return
	}

	dt := 1.0 / 60
	if clock, ok := components.Clock.First(ecs.World); ok {
		dt = components.Clock.Get(clock).DT
	}

	alpha, finished := fade.Tween.Update(float32(dt))
	fade.Alpha = alpha
	if finished {
		fade.Alpha = 0
		fade.Active = false
	}
}

func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if !fade.Active || fade.Alpha <= 0 {
		return
	}

	c := fade.Color
	a := float32(c.A) * fade.Alpha
	overlay := color.RGBA{
		R: uint8(float32(c.R) * fade.Alpha),
		G: uint8(float32(c.G) * fade.Alpha),
		B: uint8(float32(c.B) * fade.Alpha),
		A: uint8(a),
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), overlay, false)
}
