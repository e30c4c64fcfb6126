package systems

import (
	"github.com/automoto/homestead/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies each character's velocity for one tick through the
// world, which resolves collisions and raises collision events.
func UpdatePhysics(ecs *ecs.ECS) {
	w := activeWorld(ecs)
	if w == nil {
		return
	}
	dt := 1 / float64(ebiten.TPS())

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		if c.VelocityX == 0 && c.VelocityY == 0 {
			return
		}
		w.Move(c.Character, c.VelocityX*dt, c.VelocityY*dt)
	})
}
