package factory

import (
	"github.com/automoto/hallownest/archetypes"
	"github.com/automoto/hallownest/components"
	"github.com/automoto/hallownest/platformer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera exposes the session camera to the renderers.
func CreateCamera(ecs *ecs.ECS, view *platformer.Camera) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{View: view})
	return camera
}
