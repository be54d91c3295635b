package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/hallownest/assets"
	"github.com/automoto/hallownest/config"
	"github.com/automoto/hallownest/fonts"
	"github.com/automoto/hallownest/scenes"
	"github.com/automoto/hallownest/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	variant := flag.String("variant", string(config.VariantTilemap), "world to build: tilemap or procedural")
	configPath := flag.String("config", "", "YAML file overriding the built-in config")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	debug := flag.Bool("debug", false, "start with the debug overlay")
	flag.Parse()

	if err := config.ApplyVariant(config.VariantID(*variant)); err != nil {
		log.Fatal(err)
	}
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		config.Debug.Enabled = saved.Debug
	}
	if *debug {
		config.Debug.Enabled = true
	}

	var watcher *config.Watcher
	if *watch {
		if *configPath == "" {
			log.Fatal("-watch needs -config")
		}
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("watch %s: %v", *configPath, err)
		}
		defer w.Close()
		watcher = w
	}

	if err := fonts.LoadDefaults(config.Debug.FontSize); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowIcon([]image.Image{assets.Icon(64, config.World.Background)})

	game := NewGame(scenes.NewPlatformerScene(*configPath, watcher))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
