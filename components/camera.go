package components

import (
	"github.com/automoto/hallownest/platformer"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View *platformer.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
