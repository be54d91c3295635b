package components

import (
	"image/color"

	"github.com/automoto/hallownest/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	// Tile textures keyed by colour, built on first draw
	Textures map[color.RGBA]*ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
