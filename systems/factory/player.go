package factory

import (
	"image/color"

	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player entity. The character is placed later, when
// the scene resolves its spawn point.
func CreatePlayer(ecs *ecs.ECS) (*donburi.Entry, *character.Character) {
	player := archetypes.Player.Spawn(ecs)

	c := character.New("player", character.KindPlayer, cfg.Player, GenerateAnimations())
	components.Character.SetValue(player, components.CharacterData{Character: c})
	components.Sprite.SetValue(player, GenerateSprite(color.RGBA{}, color.RGBA{}))

	return player, c
}
