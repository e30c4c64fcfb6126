package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"

	"github.com/automoto/homestead/assets/animations"
	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// LevelsDir is the directory holding every TMX map inside LevelsFS.
const LevelsDir = "levels"

// LevelsFS exposes the embedded map files and their tilesets.
func LevelsFS() fs.FS {
	return assetFS
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// Sheet returns the sprite sheet for one character part.
func (l *AnimationLoader) Sheet(part character.PartID) *ebiten.Image {
	return l.MustLoadImage(fmt.Sprintf("images/characters/%s.png", part))
}

// GetFrame returns a cached sub-image for a sheet index of a part. All parts
// share one layout, so the same index lines up across every layer of a character.
func (l *AnimationLoader) GetFrame(part character.PartID, layout config.SheetLayout, frame int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", part, frame)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sx := (frame % layout.Columns) * layout.FrameWidth
	sy := (frame / layout.Columns) * layout.FrameHeight
	srcRect := image.Rect(sx, sy, sx+layout.FrameWidth, sy+layout.FrameHeight)

	img := l.Sheet(part).SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = img

	return img
}

var (
	animationLoader = NewAnimationLoader()
)

func GetSheet(part character.PartID) *ebiten.Image {
	return animationLoader.Sheet(part)
}

func GetFrame(part character.PartID, frame int) *ebiten.Image {
	return animationLoader.GetFrame(part, config.CharacterSheet, frame)
}

// PreloadCharacterFrames slices every walk and idle frame of every part up
// front so the first steps of a character do not stall on texture uploads.
func PreloadCharacterFrames() {
	layout := config.CharacterSheet
	for part := character.PartBody; part < character.PartCount; part++ {
		for _, strip := range layout.Walk {
			_, last := animations.Strip(strip.Row, strip.Length, strip.Offset, layout.Columns)
			for i := animations.IdleFrame(strip.Row, strip.Offset, layout.Columns); i <= last; i++ {
				_ = GetFrame(part, i)
			}
		}
	}
}
