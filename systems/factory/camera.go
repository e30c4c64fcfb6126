package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, zoom float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: zoom})
}
