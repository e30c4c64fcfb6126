package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the scene's level data, or nil before the level exists.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}

// activeWorld returns the live world, or nil while the scene sleeps.
func activeWorld(ecs *ecs.ECS) *world.World {
	level := GetLevel(ecs)
	if level == nil || level.World == nil || level.World.Destroyed() {
		return nil
	}
	return level.World
}

// WithGameplayChecks wraps a system to skip execution while no world is live.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if activeWorld(e) == nil {
			return
		}
		system(e)
	}
}

// DrawLevel renders the tile layers that sit below the characters.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLayers(ecs, screen, false)
}

// DrawAbovePlayer renders the tile layers that cover the characters.
func DrawAbovePlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLayers(ecs, screen, true)
}

func drawLayers(ecs *ecs.ECS, screen *ebiten.Image, above bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	w := activeWorld(ecs)
	level := GetLevel(ecs)
	if w == nil || level.Map == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	applyCamera(&opts.GeoM, camera, screen)

	// Layers are already in draw order; depth decides which side of the
	// characters they fall on.
	for _, layer := range w.Layers {
		if !layer.Visible || (layer.Depth >= cfg.Map.PlayerDepth) != above {
			continue
		}
		if layer.Index >= len(level.Map.LayerImages) {
			continue
		}
		img := level.Map.LayerImages[layer.Index]
		if img == nil {
			continue
		}
		screen.DrawImage(img, opts)
	}
}
