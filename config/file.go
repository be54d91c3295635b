package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the layout of a config overrides file. Sections and keys
// left out of the file keep their current values.
type document struct {
	Variant    VariantID        `yaml:"variant"`
	Window     Config           `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Procedural ProceduralConfig `yaml:"procedural"`
	Fade       FadeConfig       `yaml:"fade"`
	Debug      DebugConfig      `yaml:"debug"`
}

// LoadFile reads a YAML overrides file and applies it on top of the
// current values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides onto the current configuration. A variant
// named in the document is applied before the other sections, so an
// explicit physics.gravity still wins over the variant preset. On error
// nothing is changed.
func Apply(data []byte) error {
	prev := snapshot()
	if err := apply(data); err != nil {
		prev.restore()
		return err
	}
	return nil
}

func apply(data []byte) error {
	var head struct {
		Variant VariantID `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if head.Variant != "" {
		if err := ApplyVariant(head.Variant); err != nil {
			return err
		}
	}

	doc := document{
		Variant:    Variant,
		Window:     *C,
		Player:     Player,
		Physics:    Physics,
		World:      World,
		Procedural: Procedural,
		Fade:       Fade,
		Debug:      Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	*C = doc.Window
	Player = doc.Player
	Physics = doc.Physics
	World = doc.World
	Procedural = doc.Procedural
	Fade = doc.Fade
	Debug = doc.Debug
	return nil
}

func (d *document) validate() error {
	switch {
	case d.Window.Width <= 0 || d.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", d.Window.Width, d.Window.Height)
	case d.World.TileSize <= 0 || d.World.TileScaling <= 0:
		return fmt.Errorf("tile size and scaling must be positive")
	case d.World.WidthMultiplier <= 0:
		return fmt.Errorf("world width multiplier must be positive")
	case d.Physics.CellSize <= 0:
		return fmt.Errorf("physics cell size must be positive")
	case d.Physics.ReferenceTPS <= 0:
		return fmt.Errorf("physics reference tps must be positive")
	case d.Player.Scaling <= 0:
		return fmt.Errorf("player scaling must be positive")
	}
	return nil
}

// Reload restores the defaults, reapplies the variant and then the
// overrides file, if any. The variant is fixed once the world is built, so
// a file naming another one is rejected. On error the previous values stay
// in place.
func Reload(variant VariantID, path string) error {
	snapshot := snapshot()
	Reset()
	err := ApplyVariant(variant)
	if err == nil && path != "" {
		err = LoadFile(path)
	}
	if err == nil && Variant != variant {
		err = fmt.Errorf("config: %s: variant %s cannot replace %s while running", path, Variant, variant)
	}
	if err != nil {
		snapshot.restore()
		return err
	}
	return nil
}

type saved struct {
	c          Config
	player     PlayerConfig
	physics    PhysicsConfig
	world      WorldConfig
	procedural ProceduralConfig
	fade       FadeConfig
	debug      DebugConfig
	variant    VariantID
	input      InputConfig
}

func snapshot() saved {
	return saved{
		c:          *C,
		player:     Player,
		physics:    Physics,
		world:      World,
		procedural: Procedural,
		fade:       Fade,
		debug:      Debug,
		variant:    Variant,
		input:      Input,
	}
}

func (s saved) restore() {
	c := s.c
	C = &c
	Player = s.player
	Physics = s.physics
	World = s.world
	Procedural = s.procedural
	Fade = s.fade
	Debug = s.debug
	Variant = s.variant
	Input = s.input
}
