package platformer

// SessionConfig is what a session needs to know before setup.
type SessionConfig struct {
	StartX         float64
	StartY         float64
	ViewportWidth  float64
	ViewportHeight float64
	Motion         Motion
	Keymap         Keymap
}

// Session owns the per-process game state: the player, the camera, the
// input tracker and the motion tuning. It is passed explicitly through the
// loop instead of living in package globals.
type Session struct {
	Player *Player
	Camera Camera
	Input  *InputTracker
	Motion Motion

	startX float64
	startY float64
}

func NewSession(cfg SessionConfig) *Session {
	return &Session{
		Camera: NewCamera(cfg.ViewportWidth, cfg.ViewportHeight),
		Input:  NewInputTracker(cfg.Keymap),
		Motion: cfg.Motion,
		startX: cfg.StartX,
		startY: cfg.StartY,
	}
}

// Start returns the coordinate the player spawns at.
func (s *Session) Start() (float64, float64) {
	return s.startX, s.startY
}

// Retune replaces the motion tuning. It takes effect on the next key event.
func (s *Session) Retune(m Motion) {
	s.Motion = m
}

// Resize changes the viewport the camera centres on.
func (s *Session) Resize(width, height float64) {
	s.Camera.ViewportWidth = width
	s.Camera.ViewportHeight = height
}
