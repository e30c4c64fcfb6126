package systems

import (
	"github.com/automoto/homestead/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateAnimations(ecs *ecs.ECS) {
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		if c.Animations != nil {
			c.Animations.Update()
		}
	})
}
