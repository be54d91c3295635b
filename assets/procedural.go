package assets

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// GeneratorConfig describes a procedurally generated level in tiles.
type GeneratorConfig struct {
	Seed         uint64
	Columns      int
	Rows         int
	TileSize     float64
	HazardChance float64
	// SafeZone is the number of columns from the left edge kept free of
	// hazards so the spawn point is never dangerous.
	SafeZone   int
	Ledges     int
	Background color.RGBA
}

// GenerateLevel builds a level enclosed by a ground row, a roof row and two
// side walls. Hazards sit on top of the ground, never in two neighbouring
// columns. The same config always yields the same level.
func GenerateLevel(c GeneratorConfig) (*Level, error) {
	if c.Columns < 3 || c.Rows < 4 {
		return nil, fmt.Errorf("generate level: %dx%d tiles is too small", c.Columns, c.Rows)
	}
	if c.TileSize <= 0 {
		return nil, fmt.Errorf("generate level: tile size %v", c.TileSize)
	}

	rng := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	level := &Level{
		Name:       fmt.Sprintf("procedural-%d", c.Seed),
		Width:      float64(c.Columns) * c.TileSize,
		Height:     float64(c.Rows) * c.TileSize,
		Background: c.Background,
		Tiles:      []Tile{},
	}

	add := func(col, row int, kind TileKind) {
		level.Tiles = append(level.Tiles, Tile{
			X:      float64(col) * c.TileSize,
			Y:      float64(row) * c.TileSize,
			Width:  c.TileSize,
			Height: c.TileSize,
			Kind:   kind,
			Color:  DefaultColor(kind),
		})
	}

	for col := 0; col < c.Columns; col++ {
		add(col, 0, TileGround)
	}
	for col := 1; col < c.Columns-1; col++ {
		add(col, c.Rows-1, TileRoof)
	}
	for row := 1; row < c.Rows-1; row++ {
		add(0, row, TileGround)
		add(c.Columns-1, row, TileGround)
	}

	lastHazard := -2
	for col := max(c.SafeZone, 1); col < c.Columns-1; col++ {
		if col-lastHazard < 2 {
			continue
		}
		if rng.Float64() < c.HazardChance {
			add(col, 1, TileHazard)
			lastHazard = col
		}
	}

	// Ledges float between the hazard row and the roof, right of the
	// safe zone so none can overlap the spawn point.
	minRow, maxRow := 3, c.Rows-3
	firstCol := max(c.SafeZone, 2)
	for i := 0; i < c.Ledges && maxRow > minRow; i++ {
		length := 2 + rng.IntN(3)
		span := c.Columns - 1 - length - firstCol
		if span <= 0 {
			break
		}
		start := firstCol + rng.IntN(span)
		row := minRow + rng.IntN(maxRow-minRow)
		for col := start; col < start+length; col++ {
			add(col, row, TileLedge)
		}
	}

	return level, nil
}
