package components

import (
	"github.com/automoto/homestead/systems/motion"
	"github.com/yohamta/donburi"
)

type NPCData struct {
	SpawnPoint string
	Wanderer   *motion.Wanderer
}

var NPC = donburi.NewComponentType[NPCData]()
