package systems

import (
	"math"

	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	followCamera(e, config.Camera.FollowSmoothing)
}

// SnapCamera centres the camera on the player without smoothing. Scenes call
// it right after the player is placed at a spawn point.
func SnapCamera(e *ecs.ECS) {
	followCamera(e, 1)
}

func followCamera(e *ecs.ECS, smoothing float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Character.Get(playerEntry)

	w := activeWorld(e)
	if w == nil {
		return
	}

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	// Visible area in world units
	viewW := float64(config.C.Width) / zoom
	viewH := float64(config.C.Height) / zoom

	targetX := clampAxis(player.X, viewW, w.Width)
	targetY := clampAxis(player.Y, viewH, w.Height)

	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing
}

// clampAxis keeps the view inside the map. A map smaller than the view is centred.
func clampAxis(target, view, size float64) float64 {
	if size <= view {
		return size / 2
	}
	return math.Max(view/2, math.Min(size-view/2, target))
}

// applyCamera maps world coordinates to screen coordinates.
func applyCamera(geom *ebiten.GeoM, camera *components.CameraData, screen *ebiten.Image) {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	geom.Translate(-camera.Position.X, -camera.Position.Y)
	geom.Scale(zoom, zoom)
	geom.Translate(float64(width)/2, float64(height)/2)
}
