package systems

import (
	"github.com/automoto/hallownest/components"
	"github.com/automoto/hallownest/platformer"
	"github.com/automoto/hallownest/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func camera(ecs *ecs.ECS) (*platformer.Camera, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	view := components.Camera.Get(entry).View
	return view, view != nil
}

// DrawPlayer draws the texture for the player's current facing, centred
// on the body.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(ecs)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Sprite) {
			return
		}
		body := components.Player.Get(e).Body
		sprite := components.Sprite.Get(e)
		img := sprite.Texture(body.Facing)
		if img == nil {
			return
		}

		w := float64(img.Bounds().Dx()) * sprite.Scale
		h := float64(img.Bounds().Dy()) * sprite.Scale
		x, y := cam.ToScreen(body.X-w/2, body.Y+h/2)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}
