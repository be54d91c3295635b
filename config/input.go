package config

import (
	"github.com/automoto/hallownest/platformer"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings    map[platformer.Action]InputBinding
	DebugToggle []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		Bindings: map[platformer.Action]InputBinding{
			platformer.ActionUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			platformer.ActionLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			platformer.ActionRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			platformer.ActionDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
		},
		DebugToggle: []ebiten.Key{ebiten.KeyF1},
	}
}

// Keymap flattens the bindings into the lookup the input tracker uses.
func (c InputConfig) Keymap() platformer.Keymap {
	km := make(platformer.Keymap)
	for action, binding := range c.Bindings {
		for _, key := range binding.Keys {
			km[platformer.Key(key)] = action
		}
	}
	return km
}

// Motion returns the velocity resolver tuning from the player config.
func (p PlayerConfig) Motion() platformer.Motion {
	return platformer.Motion{
		MoveSpeed:     p.MoveSpeed,
		JumpSpeed:     p.JumpSpeed,
		JumpTolerance: p.JumpTolerance,
	}
}
