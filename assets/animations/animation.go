// Package animations plays frame-index strips cut from a character sheet.
// It has no ebiten dependency; callers map Frame() to a sub-image.
package animations

// Strip returns the inclusive frame range of a walking strip on a sheet that
// is columns frames wide. offset is the 1-based position of the first strip
// frame inside the row; the frame just before it is the paired idle pose.
func Strip(row, length, offset, columns int) (first, last int) {
	first = row*columns + offset
	return first, first + length - 1
}

// IdleFrame returns the single idle frame paired with a strip.
func IdleFrame(row, offset, columns int) int {
	first, _ := Strip(row, 1, offset, columns)
	return first - 1
}

type Animation struct {
	First      int
	Last       int
	SpeedInTps float32 // ticks per frame
	Repeat     bool

	frameCounter float32
	frame        int
	Looped       bool
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	if a.First == a.Last {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame++
	if a.frame > a.Last {
		a.Looped = true
		if a.Repeat {
			a.frame = a.First
		} else {
			a.frame = a.Last
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// NewAnimation builds an animation over [first, last] that shows each frame
// for tps/fps ticks.
func NewAnimation(first, last int, fps, tps float32, repeat bool) *Animation {
	speed := float32(0)
	if fps > 0 {
		speed = tps/fps - 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		SpeedInTps:   speed,
		Repeat:       repeat,
		frameCounter: speed,
		frame:        first,
	}
}
