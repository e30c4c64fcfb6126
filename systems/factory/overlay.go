package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay adds the fade overlay, fully opaque so a scene fades in.
func CreateOverlay(ecs *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{
		Color: cfg.Transition.FadeColor,
		Alpha: 1,
	})
	return overlay
}
