package factory

import (
	"github.com/automoto/hallownest/archetypes"
	"github.com/automoto/hallownest/components"
	cfg "github.com/automoto/hallownest/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFade spawns the idle respawn overlay.
func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{Color: cfg.Fade.Color})
	return fade
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(ecs)
}

func CreateSettings(ecs *ecs.ECS, debug bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{Debug: debug})
	return settings
}
