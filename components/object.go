package components

import (
	"github.com/automoto/homestead/world"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors one collision object of the active world so systems
// can query colliders through the ECS.
type ObjectData struct {
	*world.CollisionObject
}

var Object = donburi.NewComponentType[ObjectData]()
