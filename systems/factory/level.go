package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, key string, m *assets.Map, zoom float64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if zoom <= 0 {
		zoom = 1
	}
	components.Level.SetValue(level, components.LevelData{
		Key:  key,
		Map:  m,
		Zoom: zoom,
	})

	return level
}
