package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/hallownest/config"
	"github.com/automoto/hallownest/platformer"
	"github.com/automoto/hallownest/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene drives the game loop from ebiten's Update and Draw.
type PlatformerScene struct {
	world   *World
	loop    *platformer.GameLoop[*ebiten.Image]
	session *platformer.Session

	configPath string
	watcher    *cfg.Watcher

	once sync.Once
	err  error
}

// NewPlatformerScene builds a scene from the current config. When watcher
// is non-nil, changes to configPath are applied while the game runs.
func NewPlatformerScene(configPath string, watcher *cfg.Watcher) *PlatformerScene {
	return newPlatformerScene(configPath, watcher, true)
}

func newPlatformerScene(configPath string, watcher *cfg.Watcher, interactive bool) *PlatformerScene {
	ps := &PlatformerScene{
		configPath: configPath,
		watcher:    watcher,
	}
	ps.session = platformer.NewSession(platformer.SessionConfig{
		StartX:         cfg.Player.StartX,
		StartY:         cfg.Player.StartY,
		ViewportWidth:  float64(cfg.C.Width),
		ViewportHeight: float64(cfg.C.Height),
		Motion:         cfg.Player.Motion(),
		Keymap:         cfg.Input.Keymap(),
	})
	ps.world = NewWorld(ps.session, interactive)
	ps.loop = platformer.NewGameLoop[*ebiten.Image](ps.session, ps.world)
	return ps
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() {
		ps.err = ps.loop.Setup()
	})
	if ps.err != nil {
		return ps.err
	}

	ps.reloadConfig()
	systems.PollKeys(ps.loop)
	return ps.loop.Update(1 / float64(ebiten.TPS()))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.loop.Draw(screen)
}

// reloadConfig applies the watched config file when it changes. A bad
// file, or one switching the variant, is logged and the previous values
// stay in effect.
func (ps *PlatformerScene) reloadConfig() {
	if ps.watcher == nil {
		return
	}
	changed, err := ps.watcher.Poll()
	if err != nil {
		log.Printf("Warning: config watcher: %v", err)
	}
	if !changed {
		return
	}

	if err := cfg.Reload(cfg.Variant, ps.configPath); err != nil {
		log.Printf("Warning: keeping previous config: %v", err)
		return
	}
	ps.applyConfig()
	log.Printf("Reloaded config from %s", ps.configPath)
}

// applyConfig pushes tuning that can change at runtime into the running
// session and world. Geometry is fixed once loaded.
func (ps *PlatformerScene) applyConfig() {
	ps.session.Retune(cfg.Player.Motion())
	ps.session.Resize(float64(cfg.C.Width), float64(cfg.C.Height))

	ps.world.Retune()
}
