package systems

import (
	"github.com/automoto/hallownest/components"
	"github.com/automoto/hallownest/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Step returns the clock's step in reference ticks. Speeds are tuned per
// tick at the reference rate, so at that rate the step is 1.
func Step(ecs *ecs.ECS, physics *components.PhysicsData) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 1
	}
	return components.Clock.Get(entry).DT * physics.ReferenceTPS
}

// UpdatePhysics pulls the player's velocity down by gravity.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Player.Get(e).Body
		physics := components.Physics.Get(e)

		body.VelocityY -= physics.Gravity * Step(ecs, physics)
	})
}

// AdvanceClock records the step the systems run with this tick.
func AdvanceClock(ecs *ecs.ECS, dt float64) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.DT = dt
	clock.Tick++
}
