package config

import "github.com/automoto/homestead/shared/facing"

// AnimationID names one clip of a character's animation set
type AnimationID int

const (
	AnimationNone AnimationID = iota
	WalkUp
	WalkDown
	WalkLeft
	WalkRight
	IdleUp
	IdleDown
	IdleLeft
	IdleRight
)

var animationNames = map[AnimationID]string{
	WalkUp:    "WALK_UP",
	WalkDown:  "WALK_DOWN",
	WalkLeft:  "WALK_LEFT",
	WalkRight: "WALK_RIGHT",
	IdleUp:    "IDLE_UP",
	IdleDown:  "IDLE_DOWN",
	IdleLeft:  "IDLE_LEFT",
	IdleRight: "IDLE_RIGHT",
}

func (a AnimationID) String() string {
	if name, ok := animationNames[a]; ok {
		return name
	}
	return "NONE"
}

// WalkAnimation returns the walking clip for d.
func WalkAnimation(d facing.Direction) (AnimationID, bool) {
	switch d {
	case facing.Up:
		return WalkUp, true
	case facing.Down:
		return WalkDown, true
	case facing.Left:
		return WalkLeft, true
	case facing.Right:
		return WalkRight, true
	}
	return AnimationNone, false
}

// IdleAnimation returns the standing clip for d.
func IdleAnimation(d facing.Direction) (AnimationID, bool) {
	switch d {
	case facing.Up:
		return IdleUp, true
	case facing.Down:
		return IdleDown, true
	case facing.Left:
		return IdleLeft, true
	case facing.Right:
		return IdleRight, true
	}
	return AnimationNone, false
}
