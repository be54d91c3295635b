package factory

import (
	"fmt"
	"image/color"

	"github.com/automoto/hallownest/archetypes"
	"github.com/automoto/hallownest/assets"
	"github.com/automoto/hallownest/components"
	cfg "github.com/automoto/hallownest/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel builds the geometry for a variant from the current config.
func LoadLevel(variant cfg.VariantID) (*assets.Level, error) {
	switch variant {
	case cfg.VariantTilemap:
		return assets.NewLevelLoader().LoadLevel(cfg.World.MapName, cfg.World.TileScaling, cfg.World.Background)
	case cfg.VariantProcedural:
		tile := cfg.TileWorldSize()
		return assets.GenerateLevel(assets.GeneratorConfig{
			Seed:         cfg.Procedural.Seed,
			Columns:      int(float64(cfg.C.Width*cfg.World.WidthMultiplier) / tile),
			Rows:         int(float64(cfg.C.Height) / tile),
			TileSize:     tile,
			HazardChance: cfg.Procedural.HazardChance,
			SafeZone:     cfg.Procedural.SafeZoneTiles,
			Ledges:       cfg.Procedural.LedgeCount,
			Background:   cfg.World.Background,
		})
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

// CreateLevel spawns the level entity and one entity per solid or hazard
// tile. Decor tiles are only drawn.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Textures:     map[color.RGBA]*ebiten.Image{},
	})

	for _, tile := range level.Tiles {
		switch {
		case tile.Kind.Solid():
			CreateWall(ecs, tile.X, tile.Y, tile.Width, tile.Height)
		case tile.Kind == assets.TileHazard:
			CreateHazard(ecs, tile.X, tile.Y, tile.Width, tile.Height)
		}
	}

	return entry
}
