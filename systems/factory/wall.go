package factory

import (
	"github.com/automoto/hallownest/archetypes"
	"github.com/automoto/hallownest/components"
	"github.com/automoto/hallownest/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addObject(ecs, wall, resolv.NewObject(x, y, w, h, tags.ResolvSolid))
	return wall
}

// CreateHazard places a non-solid box that sends the player back to spawn.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	addObject(ecs, hazard, resolv.NewObject(x, y, w, h, tags.ResolvHazard))
	return hazard
}

func addObject(ecs *ecs.ECS, e *donburi.Entry, obj *resolv.Object) {
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
