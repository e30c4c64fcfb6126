package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/systems/motion"
	"github.com/automoto/homestead/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns held directions into the player's motion for this
// frame. Once a transition has been requested the player stands still.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Character.Get(playerEntry)
	input := getOrCreateInput(ecs)

	in := motion.Intent{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		Up:    GetAction(input, cfg.ActionMoveUp).Pressed,
		Down:  GetAction(input, cfg.ActionMoveDown).Pressed,
	}
	if w := activeWorld(ecs); w == nil || w.Transitioning() {
		in = motion.Intent{}
	}

	motion.Step(player.Character, in)
}
