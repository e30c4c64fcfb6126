package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	// Reused between frames to avoid allocating the draw list.
	drawList []*donburi.Entry
)

// DrawCharacters renders every character, back to front by the bottom of
// their frame, with all parts stacked body first.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	if activeWorld(ecs) == nil {
		return
	}

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Culling bounds
	padding := 64.0
	minX := camera.Position.X - float64(width)/zoom/2 - padding
	maxX := camera.Position.X + float64(width)/zoom/2 + padding
	minY := camera.Position.Y - float64(height)/zoom/2 - padding
	maxY := camera.Position.Y + float64(height)/zoom/2 + padding

	drawList = drawList[:0]
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		if c.X < minX || c.X > maxX || c.Y < minY || c.Y > maxY {
			return
		}
		drawList = append(drawList, e)
	})
	sort.SliceStable(drawList, func(i, j int) bool {
		return components.Character.Get(drawList[i]).Y < components.Character.Get(drawList[j]).Y
	})

	for _, e := range drawList {
		c := components.Character.Get(e)
		var sprite *components.SpriteData
		if e.HasComponent(components.Sprite) {
			sprite = components.Sprite.Get(e)
		}

		frame := -1
		if c.Animations != nil {
			frame = c.Animations.Frame()
		}
		if frame < 0 {
			drawFallback(screen, camera, c)
			continue
		}

		for part := character.PartBody; part < character.PartCount; part++ {
			img := assets.GetFrame(part, frame)

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()

			// Frame is centred on the character position
			drawOp.GeoM.Translate(c.X-c.FrameWidth/2, c.Y-c.FrameHeight/2)
			applyCamera(&drawOp.GeoM, camera, screen)

			if sprite != nil {
				drawOp.ColorScale = sprite.Tints[part]
			}

			screen.DrawImage(img, drawOp)
		}
	}
}

// drawFallback draws the body box for a character without animations.
func drawFallback(screen *ebiten.Image, camera *components.CameraData, c *components.CharacterData) {
	var geom ebiten.GeoM
	applyCamera(&geom, camera, screen)
	body := c.Body()
	x0, y0 := geom.Apply(body.X, body.Y)
	x1, y1 := geom.Apply(body.X+body.W, body.Y+body.H)
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), cfg.Debug.BodyColor, false)
}

// DrawOverlay covers the screen with the fade colour at the overlay's alpha.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	overlayEntry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(overlayEntry)
	if overlay.Alpha <= 0 {
		return
	}

	a := overlay.Alpha
	if a > 1 {
		a = 1
	}
	c := overlay.Color
	fill := color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), fill, false)
}
