package platformer

// JumpCheck reports whether the player is within tolerance of the ground.
type JumpCheck func(tolerance float64) bool

// Motion holds the tuning the velocity resolver works with. Speeds are in
// world pixels per tick.
type Motion struct {
	MoveSpeed     float64
	JumpSpeed     float64
	JumpTolerance float64
}

// Resolve turns the input state into player velocity.
//
// A jump fires only when Up is held, the latch is open and canJump agrees;
// firing closes the latch. Left and right cancel each other out. VelocityY
// is left alone unless a jump fires. It reports whether a jump fired.
func (m Motion) Resolve(in *InputState, p *Player, canJump JumpCheck) bool {
	jumped := false
	if in.Up && !in.JumpLatched && canJump != nil && canJump(m.JumpTolerance) {
		p.VelocityY = m.JumpSpeed
		in.JumpLatched = true
		jumped = true
	}

	switch {
	case in.Right && !in.Left:
		p.VelocityX = m.MoveSpeed
	case in.Left && !in.Right:
		p.VelocityX = -m.MoveSpeed
	default:
		p.VelocityX = 0
	}

	return jumped
}
