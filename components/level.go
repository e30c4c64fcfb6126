package components

import (
	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/world"
	"github.com/yohamta/donburi"
)

// LevelData is the map a scene shows. World is nil while the scene sleeps.
type LevelData struct {
	Key   string
	Map   *assets.Map
	World *world.World
	Zoom  float64
}

var Level = donburi.NewComponentType[LevelData]()
