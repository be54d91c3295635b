package factory

import (
	"github.com/automoto/hallownest/archetypes"
	"github.com/automoto/hallownest/assets"
	"github.com/automoto/hallownest/components"
	cfg "github.com/automoto/hallownest/config"
	"github.com/automoto/hallownest/platformer"
	"github.com/automoto/hallownest/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer binds body to a new collision box sized from the player
// frame and the character scaling.
func CreatePlayer(ecs *ecs.ECS, body *platformer.Player) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.FrameWidth) * cfg.Player.Scaling
	h := float64(cfg.Player.FrameHeight) * cfg.Player.Scaling
	obj := resolv.NewObject(body.X-w/2, body.Y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Body:   body,
		SpawnX: body.X,
		SpawnY: body.Y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		ReferenceTPS: cfg.Physics.ReferenceTPS,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}

// AttachKnightSprite gives the player its two facing textures: the knight
// image for Right and the same image flipped for Left.
func AttachKnightSprite(player *donburi.Entry) {
	w, h := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	right := ebiten.NewImageFromImage(assets.KnightImage(w, h))

	left := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	left.DrawImage(right, op)

	var textures [2]*ebiten.Image
	textures[platformer.FacingRight] = right
	textures[platformer.FacingLeft] = left

	player.AddComponent(components.Sprite)
	components.Sprite.SetValue(player, components.SpriteData{
		Textures: textures,
		Scale:    cfg.Player.Scaling,
	})
}
