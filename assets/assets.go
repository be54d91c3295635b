package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"path"

	"github.com/lafriks/go-tiled"
	"github.com/mazznoer/csscolorparser"
)

//go:embed all:levels
var assetFS embed.FS

// TileKind says how a tile takes part in the world
type TileKind int

const (
	TileGround TileKind = iota
	TileRoof
	TileLedge
	TileDecor
	TileHazard
)

var tileKindNames = map[string]TileKind{
	"ground": TileGround,
	"roof":   TileRoof,
	"ledge":  TileLedge,
	"decor":  TileDecor,
	"hazard": TileHazard,
}

func (k TileKind) String() string {
	for name, kind := range tileKindNames {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("TileKind(%d)", int(k))
}

// Solid reports whether the player collides with this kind of tile.
func (k TileKind) Solid() bool {
	return k == TileGround || k == TileRoof || k == TileLedge
}

// Tile is one placed tile. X and Y are its bottom-left corner in y-up
// world coordinates.
type Tile struct {
	X, Y, Width, Height float64
	Kind                TileKind
	Color               color.RGBA
}

// Level is the static geometry of a world.
type Level struct {
	Name       string
	Width      float64
	Height     float64
	Background color.RGBA
	Tiles      []Tile
}

// Count returns how many tiles of the given kind the level has.
func (l *Level) Count(kind TileKind) int {
	n := 0
	for _, t := range l.Tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Layer names read from Tiled maps and the kind their tiles default to.
var layerKinds = map[string]TileKind{
	"Platforms": TileGround,
	"Decors":    TileDecor,
	"Hazards":   TileHazard,
}

var defaultTileColors = map[TileKind]color.RGBA{
	TileGround: {R: 59, G: 74, B: 107, A: 255},
	TileRoof:   {R: 40, G: 48, B: 74, A: 255},
	TileLedge:  {R: 86, G: 122, B: 92, A: 255},
	TileDecor:  {R: 120, G: 140, B: 170, A: 255},
	TileHazard: {R: 220, G: 20, B: 60, A: 255},
}

// DefaultColor is the colour used for a tile kind with no colour property.
func DefaultColor(kind TileKind) color.RGBA {
	return defaultTileColors[kind]
}

type LevelLoader struct {
	fs fs.FS
}

// NewLevelLoader returns a loader reading the embedded levels directory.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fs: assetFS}
}

// NewLevelLoaderFS reads levels from the levels directory of fsys.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fs: fsys}
}

// LoadLevel reads a Tiled map from the levels directory and scales every
// tile by scaling. Tiled rows grow downward; the result is flipped so the
// bottom row sits at y = 0.
func (l *LevelLoader) LoadLevel(name string, scaling float64, fallback color.RGBA) (*Level, error) {
	levelPath := path.Join("levels", name)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fs))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	tileW := float64(levelMap.TileWidth) * scaling
	tileH := float64(levelMap.TileHeight) * scaling

	level := &Level{
		Name:       levelPath,
		Width:      float64(levelMap.Width) * tileW,
		Height:     float64(levelMap.Height) * tileH,
		Background: fallback,
		Tiles:      []Tile{},
	}

	if levelMap.Properties != nil {
		if bg := levelMap.Properties.GetString("background"); bg != "" {
			if c, err := parseColor(bg); err == nil {
				level.Background = c
			} else {
				log.Printf("Warning: level %s background %q: %v", levelPath, bg, err)
			}
		}
	}

	for _, layer := range levelMap.Layers {
		layerKind, ok := layerKinds[layer.Name]
		if !ok {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				kind := layerKind
				c := DefaultColor(kind)
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if k, ok := tileKindNames[tilesetTile.Properties.GetString("kind")]; ok && layerKind != TileDecor {
						kind = k
						c = DefaultColor(kind)
					}
					if v := tilesetTile.Properties.GetString("color"); v != "" {
						if parsed, err := parseColor(v); err == nil {
							c = parsed
						}
					}
				}

				level.Tiles = append(level.Tiles, Tile{
					X:      float64(x) * tileW,
					Y:      float64(levelMap.Height-1-y) * tileH,
					Width:  tileW,
					Height: tileH,
					Kind:   kind,
					Color:  c,
				})
			}
		}
	}

	return level, nil
}

func parseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
