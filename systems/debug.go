package systems

import (
	"image/color"

	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and character body of the
// active world. Plain objects and transitions use different colours.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	if activeWorld(ecs) == nil {
		return
	}

	var geom ebiten.GeoM
	applyCamera(&geom, camera, screen)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := cfg.Debug.CollisionColor
		if !o.Blocks() {
			c = cfg.Debug.TransitionColor
		}
		b := o.Bounds
		drawRect(screen, geom, b.X, b.Y, b.W, b.H, c)
	})

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Character.Get(e).Body()
		drawRect(screen, geom, body.X, body.Y, body.W, body.H, cfg.Debug.BodyColor)
	})
}

// drawRect fills a world-space rectangle and strokes its outline.
func drawRect(screen *ebiten.Image, geom ebiten.GeoM, x, y, w, h float64, c color.RGBA) {
	x0, y0 := geom.Apply(x, y)
	x1, y1 := geom.Apply(x+w, y+h)
	sw, sh := float32(x1-x0), float32(y1-y0)

	vector.FillRect(screen, float32(x0), float32(y0), sw, sh, c, false)

	edge := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	vector.StrokeRect(screen, float32(x0), float32(y0), sw, sh, 1, edge, false)
}
