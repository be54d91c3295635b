package platformer

// Facing is the direction the player sprite looks. The values index the
// two preloaded textures: Right is the source image, Left its mirror.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// SelectFacing flips facing on the sign of the horizontal velocity and
// keeps the last facing when the player stands still.
func SelectFacing(current Facing, velocityX float64) Facing {
	switch {
	case velocityX < 0:
		return FacingLeft
	case velocityX > 0:
		return FacingRight
	default:
		return current
	}
}
