package systems

import (
	"github.com/automoto/hallownest/components"
	cfg "github.com/automoto/hallownest/config"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings entry, creating it from the
// config defaults on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{Debug: cfg.Debug.Enabled})
	}
	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// UpdateSettings toggles the debug overlay and remembers the choice.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	for _, key := range cfg.Input.DebugToggle {
		if inpututil.IsKeyJustPressed(key) {
			settings.Debug = !settings.Debug
			_ = SaveSettings(&SavedSettings{Debug: settings.Debug})
			return
		}
	}
}
