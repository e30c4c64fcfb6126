package assets

import (
	"errors"
	"fmt"
	"log"
	"path"

	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Map is a parsed map plus one rendered image per tile layer.
type Map struct {
	Data *leveldata.MapData
	// LayerImages follows Data.Layers. Hidden layers have a nil image.
	LayerImages []*ebiten.Image
}

type LevelLoader struct {
	cache map[string]*Map
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{cache: make(map[string]*Map)}
}

// LoadMap loads and renders the map registered under key in config.Map.
// Results are cached, so waking a scene does not re-render its layers.
func (l *LevelLoader) LoadMap(key string) (*Map, error) {
	if m, ok := l.cache[key]; ok {
		return m, nil
	}

	def, ok := config.Map.Maps[key]
	if !ok {
		return nil, fmt.Errorf("map %q is not configured", key)
	}

	tmxPath := path.Join(LevelsDir, def.File)
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data, err := leveldata.Parse(key, levelMap)
	if err != nil {
		return nil, err
	}

	images, err := renderLayers(levelMap)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", tmxPath, err)
	}

	m := &Map{Data: data, LayerImages: images}
	l.cache[key] = m
	return m, nil
}

func (l *LevelLoader) MustLoadMap(key string) *Map {
	m, err := l.LoadMap(key)
	if err != nil {
		panic(err)
	}
	return m
}

// renderLayers rasterises each visible tile layer on its own image so layers
// can be drawn at different depths around the characters.
func renderLayers(levelMap *tiled.Map) ([]*ebiten.Image, error) {
	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, err
	}

	images := make([]*ebiten.Image, len(levelMap.Layers))
	for i, layer := range levelMap.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			if errors.Is(err, render.ErrUnsupportedOrientation) {
				return nil, err
			}
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			renderer.Clear()
			continue
		}

		img := ebiten.NewImageFromImage(renderer.Result)
		if layer.Opacity < 1 {
			faded := ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
			op := &ebiten.DrawImageOptions{}
			op.ColorScale.ScaleAlpha(float32(layer.Opacity))
			faded.DrawImage(img, op)
			img.Deallocate()
			img = faded
		}
		images[i] = img
		renderer.Clear()
	}
	return images, nil
}

var levelLoader = NewLevelLoader()

func LoadMap(key string) (*Map, error) {
	return levelLoader.LoadMap(key)
}

func MustLoadMap(key string) *Map {
	return levelLoader.MustLoadMap(key)
}

// ValidateAll loads every embedded map and checks that each transition
// points at an existing map and spawn point.
func ValidateAll() error {
	maps, _, err := leveldata.LoadAll(assetFS, LevelsDir)
	if err != nil {
		return err
	}
	return leveldata.ValidateLinks(maps)
}
