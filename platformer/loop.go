package platformer

import (
	"errors"
	"fmt"
)

var (
	ErrNotRunning     = errors.New("game loop is not running")
	ErrAlreadyRunning = errors.New("game loop is already running")
)

// State is the orchestrator lifecycle. Running is terminal.
type State int

const (
	StateUninitialized State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Collaborator supplies the static geometry, physics and rendering the
// loop delegates to. T is the render target type.
type Collaborator[T any] interface {
	// Load builds the static geometry and binds the player to it.
	Load(p *Player) error
	// Integrate runs one physics step: gravity, movement and collision.
	Integrate(p *Player, dt float64)
	// CanJump reports whether the player stands within tolerance of ground.
	CanJump(p *Player, tolerance float64) bool
	// Draw renders the scene for the session's camera.
	Draw(target T, s *Session)
}

// GameLoop sequences a session against its collaborator once per frame.
type GameLoop[T any] struct {
	session *Session
	world   Collaborator[T]
	state   State
}

func NewGameLoop[T any](session *Session, world Collaborator[T]) *GameLoop[T] {
	return &GameLoop[T]{session: session, world: world}
}

func (g *GameLoop[T]) Session() *Session {
	return g.session
}

func (g *GameLoop[T]) State() State {
	return g.state
}

// Setup spawns the player at the start coordinate and loads the world.
// It runs once; the loop stays Running until the process exits.
func (g *GameLoop[T]) Setup() error {
	if g.state == StateRunning {
		return ErrAlreadyRunning
	}

	x, y := g.session.Start()
	player := NewPlayer(x, y)
	if err := g.world.Load(player); err != nil {
		return fmt.Errorf("load world: %w", err)
	}

	g.session.Player = player
	g.session.Camera.Follow(player)
	g.state = StateRunning
	return nil
}

// Update advances one frame: physics, then facing, then camera.
func (g *GameLoop[T]) Update(dt float64) error {
	if g.state != StateRunning {
		return ErrNotRunning
	}

	p := g.session.Player
	g.world.Integrate(p, dt)
	p.Facing = SelectFacing(p.Facing, p.VelocityX)
	g.session.Camera.Follow(p)
	return nil
}

// Draw hands the frame to the collaborator. Nothing is drawn before Setup.
func (g *GameLoop[T]) Draw(target T) {
	if g.state != StateRunning {
		return
	}
	g.world.Draw(target, g.session)
}

// KeyDown records a key press and re-resolves the player's velocity.
func (g *GameLoop[T]) KeyDown(key Key) {
	g.session.Input.KeyDown(key)
	g.resolve()
}

// KeyUp records a key release and re-resolves the player's velocity.
func (g *GameLoop[T]) KeyUp(key Key) {
	g.session.Input.KeyUp(key)
	g.resolve()
}

func (g *GameLoop[T]) resolve() {
	if g.state != StateRunning {
		return
	}
	p := g.session.Player
	g.session.Motion.Resolve(&g.session.Input.State, p, func(tolerance float64) bool {
		return g.world.CanJump(p, tolerance)
	})
}
