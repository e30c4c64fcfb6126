package factory

import (
	"image/color"

	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
)

// GenerateAnimations cuts the walk and idle clips of the shared character
// sheet and makes sure every part sheet is loaded.
func GenerateAnimations() *character.AnimationSet {
	for part := character.PartBody; part < character.PartCount; part++ {
		_ = assets.GetSheet(part)
	}
	return character.NewAnimationSet(cfg.CharacterSheet, float32(cfg.C.TPS))
}

// GenerateSprite tints the skin and hair layers. A zero colour leaves the
// part untinted.
func GenerateSprite(skin, hair color.RGBA) components.SpriteData {
	var s components.SpriteData
	if skin.A > 0 {
		s.Tints[character.PartBody].ScaleWithColor(skin)
	}
	if hair.A > 0 {
		s.Tints[character.PartHair].ScaleWithColor(hair)
	}
	return s
}
