package components

import (
	"github.com/automoto/hallownest/platformer"
	"github.com/yohamta/donburi"
)

// PlayerData binds the session's player to its entity. The body is the
// source of truth between frames; the collision object follows it.
type PlayerData struct {
	Body   *platformer.Player
	Input  *platformer.InputState
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
