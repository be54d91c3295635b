package systems

import (
	"github.com/automoto/hallownest/assets"
	"github.com/automoto/hallownest/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the background and draws every tile inside the viewport.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(entry)
	level := levelData.CurrentLevel
	if level == nil {
		return
	}

	// Draw the background from the loaded level
	screen.Fill(level.Background)

	cam, ok := camera(ecs)
	if !ok {
		return
	}

	for i := range level.Tiles {
		tile := &level.Tiles[i]
		if !cam.Visible(tile.X, tile.Y, tile.Width, tile.Height) {
			continue
		}

		img := tileTexture(levelData, tile)
		// Screen space grows downward, so anchor on the tile's top edge.
		x, y := cam.ToScreen(tile.X, tile.Y+tile.Height)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	}
}

func tileTexture(levelData *components.LevelData, tile *assets.Tile) *ebiten.Image {
	if img, ok := levelData.Textures[tile.Color]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(assets.TileImage(int(tile.Width), int(tile.Height), tile.Color))
	levelData.Textures[tile.Color] = img
	return img
}
