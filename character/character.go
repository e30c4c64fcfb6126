// Package character models a walking character as a fixed set of co-located
// collision parts plus its facing and animation state. It has no ebiten
// dependency so world and motion logic can be tested headless.
package character

import (
	"fmt"

	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/facing"
	"github.com/automoto/homestead/tags"
	"github.com/solarlune/resolv"
)

// Kind tells the world how a character reacts to transition triggers.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "npc"
}

// PartID identifies one sub-shape of a composite character. PartBody is the
// only part that reacts to collision objects.
type PartID int

const (
	PartBody PartID = iota
	PartHair
	PartChest
	PartPants
	PartShoes
	PartCount
)

var partTags = [PartCount]string{
	PartBody:  tags.ResolvBody,
	PartHair:  tags.ResolvHair,
	PartChest: tags.ResolvChest,
	PartPants: tags.ResolvPants,
	PartShoes: tags.ResolvShoes,
}

func (p PartID) String() string {
	if p >= 0 && p < PartCount {
		return partTags[p]
	}
	return fmt.Sprintf("PartID(%d)", int(p))
}

// BoundingBox is the collision footprint relative to the top-left of the
// sprite frame.
type BoundingBox struct {
	OffsetX, OffsetY float64
	W, H             float64
}

// BottomCenter anchors a w x h box to the bottom centre of a frame.
func BottomCenter(frameW, frameH, w, h int) BoundingBox {
	return BoundingBox{
		OffsetX: float64(frameW-w) / 2,
		OffsetY: float64(frameH - h),
		W:       float64(w),
		H:       float64(h),
	}
}

type Character struct {
	Name string
	Kind Kind

	// X, Y is the centre of the sprite frame.
	X, Y   float64
	Facing facing.Direction

	VelocityX, VelocityY float64
	SpeedX, SpeedY       float64

	FrameWidth, FrameHeight float64
	Box                     BoundingBox

	Parts      [PartCount]*resolv.Object
	Animations *AnimationSet
}

// New builds a character from an archetype config. All parts share the
// archetype's bounding box and start facing down at the origin.
func New(name string, kind Kind, cfg config.CharacterConfig, anims *AnimationSet) *Character {
	c := &Character{
		Name:        name,
		Kind:        kind,
		Facing:      facing.Down,
		SpeedX:      cfg.VelocityX,
		SpeedY:      cfg.VelocityY,
		FrameWidth:  float64(cfg.FrameWidth),
		FrameHeight: float64(cfg.FrameHeight),
		Box:         BottomCenter(cfg.FrameWidth, cfg.FrameHeight, cfg.BBoxWidth, cfg.BBoxHeight),
		Animations:  anims,
	}

	for id := PartBody; id < PartCount; id++ {
		obj := resolv.NewObject(0, 0, c.Box.W, c.Box.H, tags.ResolvCharacter, partTags[id])
		obj.SetShape(resolv.NewRectangle(0, 0, c.Box.W, c.Box.H))
		obj.Data = c
		c.Parts[id] = obj
	}
	c.SetPosition(0, 0)
	return c
}

// Body returns the part that collides with the world.
func (c *Character) Body() *resolv.Object {
	return c.Parts[PartBody]
}

// PartOf resolves which part of c the resolv object is.
func (c *Character) PartOf(obj *resolv.Object) (PartID, bool) {
	for id, p := range c.Parts {
		if p == obj {
			return PartID(id), true
		}
	}
	return 0, false
}

// FromObject returns the character owning a part object, if any.
func FromObject(obj *resolv.Object) (*Character, PartID, bool) {
	c, ok := obj.Data.(*Character)
	if !ok {
		return nil, 0, false
	}
	id, ok := c.PartOf(obj)
	return c, id, ok
}

// BoxAt returns the collision box the character would have at x, y.
func (c *Character) BoxAt(x, y float64) (bx, by float64) {
	return x - c.FrameWidth/2 + c.Box.OffsetX, y - c.FrameHeight/2 + c.Box.OffsetY
}

// SetPosition moves the character and every part with it.
func (c *Character) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	bx, by := c.BoxAt(x, y)
	for _, p := range c.Parts {
		p.X, p.Y = bx, by
		p.Update()
	}
}

// SpawnAt places the character and turns it to face dir. The current idle
// clip is switched to match.
func (c *Character) SpawnAt(x, y float64, dir facing.Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("spawn %s: %w: %d", c.Name, facing.ErrInvalidDirection, int(dir))
	}
	c.SetPosition(x, y)
	c.Facing = dir
	c.VelocityX, c.VelocityY = 0, 0
	if c.Animations != nil {
		if id, ok := config.IdleAnimation(dir); ok {
			c.Animations.Play(id)
		}
	}
	return nil
}
