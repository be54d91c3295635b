package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// Default is the render layer every entity is created on.
const Default = ecs.LayerDefault

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in world pixels per tick
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`

	// Distance below the feet that still counts as standing on ground
	JumpTolerance float64 `yaml:"jump_tolerance"`

	// Spawn point (sprite centre, y-up world coordinates)
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`

	// Source texture size and the scale it is drawn and collided at
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	Scaling     float64 `yaml:"scaling"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`

	// Tick rate the per-tick speeds were tuned for
	ReferenceTPS float64 `yaml:"reference_tps"`

	// Collision grid cell size in world pixels
	CellSize int `yaml:"cell_size"`
}

// WorldConfig describes how level geometry is sized
type WorldConfig struct {
	// Procedural worlds are this many windows wide
	WidthMultiplier int `yaml:"width_multiplier"`

	// Source tile size in the map file and the scale applied on load
	TileSize    int     `yaml:"tile_size"`
	TileScaling float64 `yaml:"tile_scaling"`

	// Map file inside the embedded levels directory
	MapName string `yaml:"map_name"`

	// Used when the map does not define a background
	Background color.RGBA `yaml:"-"`
}

// ProceduralConfig tunes the generated level
type ProceduralConfig struct {
	Seed          uint64  `yaml:"seed"`
	HazardChance  float64 `yaml:"hazard_chance"`
	SafeZoneTiles int     `yaml:"safe_zone_tiles"`
	LedgeCount    int     `yaml:"ledge_count"`
}

// FadeConfig controls the overlay shown after a hazard respawn
type FadeConfig struct {
	Duration float32    `yaml:"duration"` // seconds
	Color    color.RGBA `yaml:"-"`
}

// DebugConfig contains debug options, overridable by command-line flags
type DebugConfig struct {
	Enabled  bool    `yaml:"enabled"`
	FontSize float64 `yaml:"font_size"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var World WorldConfig
var Procedural ProceduralConfig
var Fade FadeConfig
var Debug DebugConfig

// Shared palette
var (
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Abyss      = color.RGBA{R: 14, G: 18, B: 33, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	HazardRed  = colornames.Crimson
	PlayerBlue = colornames.Cornflowerblue
	TextShadow = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	Reset()
}

// Reset restores every config value to its built-in default.
func Reset() {
	C = &Config{
		Width:  1664, // 128 * 13
		Height: 896,  // 128 * 7
		Title:  "Hollow knight",
	}

	Physics = PhysicsConfig{
		Gravity:      1.5,
		ReferenceTPS: 60,
		CellSize:     32,
	}

	Player = PlayerConfig{
		MoveSpeed:     7,
		JumpSpeed:     21,
		JumpTolerance: 10,

		StartX: 128,
		StartY: 256,

		FrameWidth:  64,
		FrameHeight: 96,
		Scaling:     1,
	}

	World = WorldConfig{
		WidthMultiplier: 3,
		TileSize:        128,
		TileScaling:     0.5,
		MapName:         "hallownest.tmx",
		Background:      Abyss,
	}

	Procedural = ProceduralConfig{
		Seed:          1,
		HazardChance:  0.12,
		SafeZoneTiles: 6,
		LedgeCount:    8,
	}

	Fade = FadeConfig{
		Duration: 0.6,
		Color:    Black,
	}

	Debug = DebugConfig{
		Enabled:  false,
		FontSize: 14,
	}

	Variant = VariantTilemap
	Input = defaultInput()
}

// TileWorldSize is the edge length of one tile after scaling.
func TileWorldSize() float64 {
	return float64(World.TileSize) * World.TileScaling
}
