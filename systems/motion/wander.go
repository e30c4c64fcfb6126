package motion

import (
	"math/rand/v2"

	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/facing"
)

// Wanderer drives an NPC by picking a random direction, or standing still,
// for a random stretch of time.
type Wanderer struct {
	Character *character.Character

	cfg       config.NPCConfig
	rng       *rand.Rand
	intent    Intent
	remaining float64
}

func NewWanderer(c *character.Character, cfg config.NPCConfig, seed uint64) *Wanderer {
	return &Wanderer{
		Character: c,
		cfg:       cfg,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Intent returns the current decision.
func (w *Wanderer) Intent() Intent {
	return w.intent
}

// Update counts down the current decision and steps the character.
// delta is in seconds.
func (w *Wanderer) Update(_, delta float64) {
	w.remaining -= delta
	if w.remaining <= 0 {
		w.decide()
	}
	Step(w.Character, w.intent)
}

func (w *Wanderer) decide() {
	if w.rng.Float64() < w.cfg.IdleChance {
		w.intent = Intent{}
	} else {
		w.intent = IntentFor(facing.All[w.rng.IntN(len(facing.All))])
	}

	span := w.cfg.WanderMaxSeconds - w.cfg.WanderMinSeconds
	w.remaining = w.cfg.WanderMinSeconds + w.rng.Float64()*max(span, 0)
}
