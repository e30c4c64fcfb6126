package character

import (
	"github.com/automoto/homestead/assets/animations"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/facing"
)

// AnimationSet holds every clip a character can play and tracks the active one.
type AnimationSet struct {
	Current config.AnimationID
	clips   map[config.AnimationID]*animations.Animation
}

// NewAnimationSet cuts walk and idle clips for each direction out of layout.
func NewAnimationSet(layout config.SheetLayout, tps float32) *AnimationSet {
	s := &AnimationSet{clips: make(map[config.AnimationID]*animations.Animation, 2*len(facing.All))}
	for _, d := range facing.All {
		strip, ok := layout.Walk[d]
		if !ok {
			continue
		}
		walk, _ := config.WalkAnimation(d)
		idle, _ := config.IdleAnimation(d)

		first, last := animations.Strip(strip.Row, strip.Length, strip.Offset, layout.Columns)
		s.clips[walk] = animations.NewAnimation(first, last, layout.FrameRate, tps, true)

		frame := animations.IdleFrame(strip.Row, strip.Offset, layout.Columns)
		s.clips[idle] = animations.NewAnimation(frame, frame, layout.FrameRate, tps, true)
	}
	return s
}

// Play switches to clip id and restarts it. Playing the clip that is
// already active does nothing. It reports whether the clip was restarted.
func (s *AnimationSet) Play(id config.AnimationID) bool {
	if s.Current == id {
		return false
	}
	clip, ok := s.clips[id]
	if !ok {
		return false
	}
	clip.Restart()
	s.Current = id
	return true
}

// Active returns the playing clip, or nil before the first Play.
func (s *AnimationSet) Active() *animations.Animation {
	return s.clips[s.Current]
}

// Clip returns a clip by id.
func (s *AnimationSet) Clip(id config.AnimationID) (*animations.Animation, bool) {
	clip, ok := s.clips[id]
	return clip, ok
}

// Update advances the active clip by one tick.
func (s *AnimationSet) Update() {
	if clip := s.Active(); clip != nil {
		clip.Update()
	}
}

// Frame returns the sheet index to draw, or -1 when nothing is playing.
func (s *AnimationSet) Frame() int {
	if clip := s.Active(); clip != nil {
		return clip.Frame()
	}
	return -1
}
