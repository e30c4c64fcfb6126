package base

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade tweens a value such as an overlay alpha. It unregisters itself
// when finished and then calls the done callback.
type Fade struct {
	tween    *gween.Tween
	target   *float64
	registry *Registry
	onDone   func()
	finished bool
}

// StartFade registers a fade from -> to over seconds on r.
func StartFade(r *Registry, target *float64, from, to, seconds float64, onDone func()) *Fade {
	f := &Fade{
		tween:    gween.New(float32(from), float32(to), float32(seconds), ease.Linear),
		target:   target,
		registry: r,
		onDone:   onDone,
	}
	*target = from
	r.Add(f)
	return f
}

func (f *Fade) Update(_, delta float64) {
	if f.finished {
		return
	}
	v, done := f.tween.Update(float32(delta))
	*f.target = float64(v)
	if !done {
		return
	}
	f.finished = true
	f.registry.Remove(f)
	if f.onDone != nil {
		f.onDone()
	}
}

// Finished reports whether the fade reached its end value.
func (f *Fade) Finished() bool {
	return f.finished
}
