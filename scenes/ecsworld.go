package scenes

import (
	"math"

	"github.com/automoto/hallownest/components"
	cfg "github.com/automoto/hallownest/config"
	"github.com/automoto/hallownest/platformer"
	"github.com/automoto/hallownest/systems"
	"github.com/automoto/hallownest/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World is the game loop's collaborator. It owns the ECS world holding
// the level geometry, the collision space and the renderers.
type World struct {
	ecs     *ecs.ECS
	session *platformer.Session
	player  *donburi.Entry
	// interactive worlds texture the player and read the debug toggle key;
	// without it the world simulates without a window.
	interactive bool
}

func NewWorld(session *platformer.Session, interactive bool) *World {
	return &World{session: session, interactive: interactive}
}

// Load builds the ECS world for the active variant and binds p to it.
func (w *World) Load(p *platformer.Player) error {
	level, err := factory.LoadLevel(cfg.Variant)
	if err != nil {
		return err
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateHazards)
	ecs.AddSystem(systems.UpdateFade)
	if w.interactive {
		ecs.AddSystem(systems.UpdateSettings)
	}

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateClock(ecs)
	factory.CreateSettings(ecs, cfg.Debug.Enabled)
	factory.CreateFade(ecs)

	// The space must exist before any collision object is created.
	factory.CreateSpace(ecs,
		int(math.Ceil(level.Width)),
		int(math.Ceil(level.Height)),
		cfg.Physics.CellSize, cfg.Physics.CellSize,
	)
	factory.CreateLevel(ecs, level)
	factory.CreateCamera(ecs, &w.session.Camera)

	player := factory.CreatePlayer(ecs, p)
	components.Player.Get(player).Input = &w.session.Input.State
	if w.interactive {
		factory.AttachKnightSprite(player)
	}

	w.ecs = ecs
	w.player = player
	return nil
}

func (w *World) Integrate(p *platformer.Player, dt float64) {
	systems.AdvanceClock(w.ecs, dt)
	w.ecs.Update()
}

func (w *World) CanJump(p *platformer.Player, tolerance float64) bool {
	return systems.CanJump(w.ecs, p, tolerance)
}

func (w *World) Draw(screen *ebiten.Image, s *platformer.Session) {
	w.ecs.Draw(screen)
}

// Retune pushes the physics and fade config into a loaded world.
func (w *World) Retune() {
	if w.ecs == nil {
		return
	}
	physics := components.Physics.Get(w.player)
	physics.Gravity = cfg.Physics.Gravity
	physics.ReferenceTPS = cfg.Physics.ReferenceTPS

	if entry, ok := components.Fade.First(w.ecs.World); ok {
		components.Fade.Get(entry).Color = cfg.Fade.Color
	}
}
