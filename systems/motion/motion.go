// Package motion is the per-character walk/idle state machine shared by the
// player and NPCs. It turns four digital direction signals into a velocity,
// a facing and an animation choice.
package motion

import (
	"fmt"

	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/facing"
)

// Intent holds the directional signals read for one frame.
type Intent struct {
	Up, Down, Left, Right bool
}

// IntentFor returns an intent asserting only d.
func IntentFor(d facing.Direction) Intent {
	switch d {
	case facing.Up:
		return Intent{Up: true}
	case facing.Down:
		return Intent{Down: true}
	case facing.Left:
		return Intent{Left: true}
	case facing.Right:
		return Intent{Right: true}
	}
	return Intent{}
}

// Direction picks a single direction. Left wins over right, right over
// down, down over up; diagonals never produce two axes.
func (in Intent) Direction() (facing.Direction, bool) {
	switch {
	case in.Left:
		return facing.Left, true
	case in.Right:
		return facing.Right, true
	case in.Down:
		return facing.Down, true
	case in.Up:
		return facing.Up, true
	}
	return 0, false
}

// Step runs one frame of the state machine for c. Velocity is in pixels per
// second and is applied by the caller.
func Step(c *character.Character, in Intent) {
	c.VelocityX, c.VelocityY = 0, 0

	dir, moving := in.Direction()
	if moving {
		switch dir {
		case facing.Left:
			c.VelocityX = -c.SpeedX
		case facing.Right:
			c.VelocityX = c.SpeedX
		case facing.Down:
			c.VelocityY = c.SpeedY
		case facing.Up:
			c.VelocityY = -c.SpeedY
		}
		c.Facing = dir
		walk, _ := config.WalkAnimation(dir)
		play(c, walk)
		return
	}

	idle, ok := config.IdleAnimation(c.Facing)
	if !ok {
		panic(fmt.Sprintf("motion: %s has no idle animation for facing %v", c.Name, c.Facing))
	}
	play(c, idle)
}

func play(c *character.Character, id config.AnimationID) {
	if c.Animations != nil {
		c.Animations.Play(id)
	}
}
