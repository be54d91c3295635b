package components

import "github.com/yohamta/donburi"

// ClockData is the step the systems are advancing by this tick.
type ClockData struct {
	DT   float64
	Tick int
}

var Clock = donburi.NewComponentType[ClockData]()
