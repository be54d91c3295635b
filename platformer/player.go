package platformer

// Player is the controllable entity. X and Y are the sprite centre in y-up
// world coordinates; velocities are world pixels per tick.
type Player struct {
	X         float64
	Y         float64
	VelocityX float64
	VelocityY float64
	Facing    Facing
}

func NewPlayer(x, y float64) *Player {
	return &Player{X: x, Y: y, Facing: FacingRight}
}
