package components

import (
	"github.com/automoto/homestead/character"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	*character.Character
}

var Character = donburi.NewComponentType[CharacterData]()
