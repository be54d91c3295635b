package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Gravity      float64
	ReferenceTPS float64
	OnGround     *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
