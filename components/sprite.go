package components

import (
	"github.com/automoto/homestead/character"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData holds the colour applied to each layered part of a character.
type SpriteData struct {
	Tints [character.PartCount]ebiten.ColorScale
}

var Sprite = donburi.NewComponentType[SpriteData]()
