package main

import (
	"log"
	"os"

	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/fonts"
	"github.com/automoto/homestead/scenes"
	"github.com/automoto/homestead/scenes/base"
	"github.com/automoto/homestead/systems"
	"github.com/automoto/homestead/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Optional YAML overrides, see config.OverrideSpec.
const defaultConfigPath = "homestead.yaml"

type Game struct {
	scenes map[string]*scenes.MapScene
	scene  *scenes.MapScene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(config.Debug.HUDFontSize); err != nil {
		return nil, err
	}
	assets.PreloadCharacterFrames()

	g := &Game{scenes: make(map[string]*scenes.MapScene)}

	first, err := scenes.NewMapScene(config.Map.StartMap, g, nil)
	if err != nil {
		return nil, err
	}
	// The first scene starts with an empty payload and uses the default spawn point.
	if err := first.Start(base.TransitionData{}); err != nil {
		return nil, err
	}
	g.scenes[first.Key()] = first
	g.scene = first

	return g, nil
}

// ChangeMap puts the current scene to sleep and enters the target map,
// waking its scene if it was visited before.
func (g *Game) ChangeMap(req world.TransitionRequest) error {
	data := base.TransitionData{
		TargetSpawnPointName: req.TargetSpawnPoint,
		SourceMap:            req.SourceMap,
	}

	g.scene.Sleep()

	if next, ok := g.scenes[req.TargetMap]; ok {
		if err := next.Wake(data); err != nil {
			return err
		}
		g.scene = next
		return nil
	}

	next, err := scenes.NewMapScene(req.TargetMap, g, nil)
	if err != nil {
		return err
	}
	if err := next.Start(data); err != nil {
		return err
	}
	g.scenes[next.Key()] = next
	g.scene = next
	return nil
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
	configPath := defaultConfigPath
	if p := os.Getenv("HOMESTEAD_CONFIG"); p != "" {
		configPath = p
	}
	if err := config.ApplyFile(configPath); err != nil {
		log.Fatalf("Failed to apply config %s: %v", configPath, err)
	}

	if err := assets.ValidateAll(); err != nil {
		log.Fatalf("Invalid maps: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
