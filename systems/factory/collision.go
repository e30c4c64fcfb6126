package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/tags"
	"github.com/automoto/homestead/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollisionObjects mirrors every collision object of w as an entity.
// Transition triggers also carry tags.Transition.
func CreateCollisionObjects(ecs *ecs.ECS, w *world.World) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(w.Objects()))
	for _, o := range w.Objects() {
		var entry *donburi.Entry
		if o.Kind == world.KindTransition {
			entry = archetypes.CollisionObject.Spawn(ecs, tags.Transition)
		} else {
			entry = archetypes.CollisionObject.Spawn(ecs)
		}
		components.Object.SetValue(entry, components.ObjectData{CollisionObject: o})
		entries = append(entries, entry)
	}
	return entries
}

// DestroyCollisionObjects removes the entities made by CreateCollisionObjects.
func DestroyCollisionObjects(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	tags.CollisionObject.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		ecs.World.Remove(e.Entity())
	}
}
