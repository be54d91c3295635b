package components

import (
	"github.com/automoto/hallownest/platformer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData holds one texture per facing.
type SpriteData struct {
	Textures [2]*ebiten.Image
	Scale    float64
}

func (s *SpriteData) Texture(f platformer.Facing) *ebiten.Image {
	return s.Textures[f]
}

var Sprite = donburi.NewComponentType[SpriteData]()
