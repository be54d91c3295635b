package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hallownest/components"
	cfg "github.com/automoto/hallownest/config"
	"github.com/automoto/hallownest/fonts"
	"github.com/automoto/hallownest/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cam, ok := camera(ecs)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			if !cam.Visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}

			x, y := cam.ToScreen(obj.X, obj.Y+obj.H)

			c := cfg.Cyan
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.PlayerBlue
			} else if obj.HasTags(tags.ResolvHazard) {
				c = cfg.HazardRed
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	face := fonts.Debug.Text()
	lineHeight := float64(fonts.Debug.Get().Metrics().Height.Ceil())
	for i, line := range DebugLines(ecs) {
		y := 8 + lineHeight*float64(i)
		drawText(screen, line, face, 9, y+1, cfg.TextShadow)
		drawText(screen, line, face, 8, y, color.White)
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DebugLines is the text readout shown with the collision outlines.
func DebugLines(ecs *ecs.ECS) []string {
	lines := []string{
		fmt.Sprintf("variant %s  gravity %.2f", cfg.Variant, cfg.Physics.Gravity),
	}

	if clock, ok := components.Clock.First(ecs.World); ok {
		c := components.Clock.Get(clock)
		lines = append(lines, fmt.Sprintf("tick %d  dt %.4f", c.Tick, c.DT))
	}

	if entry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(entry)
		body := player.Body
		physics := components.Physics.Get(entry)
		lines = append(lines,
			fmt.Sprintf("pos %.1f, %.1f", body.X, body.Y),
			fmt.Sprintf("vel %.1f, %.1f", body.VelocityX, body.VelocityY),
			fmt.Sprintf("facing %s  grounded %t", body.Facing, physics.OnGround != nil),
		)
		if in := player.Input; in != nil {
			lines = append(lines, fmt.Sprintf("keys up %t left %t right %t down %t latched %t",
				in.Up, in.Left, in.Right, in.Down, in.JumpLatched))
		}
	}

	if cam, ok := camera(ecs); ok {
		lines = append(lines, fmt.Sprintf("camera %.1f, %.1f", cam.OffsetX, cam.OffsetY))
	}

	return lines
}
