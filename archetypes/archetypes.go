package archetypes

import (
	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Sprite,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Character,
		components.Sprite,
		components.NPC,
	)
	CollisionObject = newArchetype(
		tags.CollisionObject,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
