package systems

import (
	"github.com/automoto/hallownest/components"
	"github.com/automoto/hallownest/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards sends a player touching a hazard back to its spawn point
// and starts the fade overlay. Vertical speed is cleared; horizontal speed
// still follows whatever movement keys are held.
func UpdateHazards(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		if touching(obj, 0, 0, tags.ResolvHazard) == nil {
			return
		}

		player := components.Player.Get(e)
		body := player.Body
		body.X, body.Y = player.SpawnX, player.SpawnY
		body.VelocityY = 0
		components.Physics.Get(e).OnGround = nil
		syncObject(obj, body)

		TriggerFade(ecs)
	})
}
