package factory

import (
	"hash/fnv"

	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/systems/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNPC spawns a wandering non-player character. Its wanderer is seeded
// from the name so a given NPC always makes the same choices.
func CreateNPC(ecs *ecs.ECS, def cfg.NPCDef) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)

	c := character.New(def.Name, character.KindNPC, cfg.NPC.CharacterConfig, GenerateAnimations())
	components.Character.SetValue(npc, components.CharacterData{Character: c})
	components.Sprite.SetValue(npc, GenerateSprite(def.SkinTint, def.HairTint))

	h := fnv.New64a()
	_, _ = h.Write([]byte(def.Name))
	components.NPC.SetValue(npc, components.NPCData{
		SpawnPoint: def.SpawnPoint,
		Wanderer:   motion.NewWanderer(c, cfg.NPC, h.Sum64()),
	})

	return npc
}
