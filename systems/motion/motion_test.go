package motion

import (
	"testing"

	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/facing"
)

func newCharacter() *character.Character {
	anims := character.NewAnimationSet(config.CharacterSheet, 60)
	c := character.New("Blockost", character.KindPlayer, config.Player, anims)
	if err := c.SpawnAt(0, 0, facing.Down); err != nil {
		panic(err)
	}
	return c
}

func TestSingleDirection(t *testing.T) {
	tests := []struct {
		dir    facing.Direction
		vx, vy float64
		walk   config.AnimationID
	}{
		{facing.Left, -140, 0, config.WalkLeft},
		{facing.Right, 140, 0, config.WalkRight},
		{facing.Down, 0, 140, config.WalkDown},
		{facing.Up, 0, -140, config.WalkUp},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			c := newCharacter()
			Step(c, IntentFor(tc.dir))

			if c.VelocityX != tc.vx || c.VelocityY != tc.vy {
				t.Errorf("Velocity (%v, %v), expected (%v, %v)", c.VelocityX, c.VelocityY, tc.vx, tc.vy)
			}
			if c.Animations.Current != tc.walk {
				t.Errorf("Animation %v, expected %v", c.Animations.Current, tc.walk)
			}
			if c.Facing != tc.dir {
				t.Errorf("Facing %v, expected %v", c.Facing, tc.dir)
			}
		})
	}
}

func TestReleaseIdlesInLastDirection(t *testing.T) {
	for _, dir := range facing.All {
		c := newCharacter()
		Step(c, IntentFor(dir))
		Step(c, Intent{})

		idle, _ := config.IdleAnimation(dir)
		if c.VelocityX != 0 || c.VelocityY != 0 {
			t.Errorf("%v: expected zero velocity, got (%v, %v)", dir, c.VelocityX, c.VelocityY)
		}
		if c.Animations.Current != idle {
			t.Errorf("%v: expected %v, got %v", dir, idle, c.Animations.Current)
		}
		if c.Facing != dir {
			t.Errorf("%v: facing changed to %v", dir, c.Facing)
		}
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		name  string
		combo Intent
		alone Intent
	}{
		{"left+right", Intent{Left: true, Right: true}, Intent{Left: true}},
		{"left+down", Intent{Left: true, Down: true}, Intent{Left: true}},
		{"down+up", Intent{Down: true, Up: true}, Intent{Down: true}},
		{"right+up", Intent{Right: true, Up: true}, Intent{Right: true}},
		{"all", Intent{Left: true, Right: true, Up: true, Down: true}, Intent{Left: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := newCharacter(), newCharacter()
			Step(a, tc.combo)
			Step(b, tc.alone)

			if a.VelocityX != b.VelocityX || a.VelocityY != b.VelocityY ||
				a.Facing != b.Facing || a.Animations.Current != b.Animations.Current {
				t.Errorf("%s behaved differently from its single-direction equivalent", tc.name)
			}
			if a.VelocityX != 0 && a.VelocityY != 0 {
				t.Error("Diagonal velocity produced")
			}
		})
	}
}

func TestHeldDirectionDoesNotRestartWalk(t *testing.T) {
	c := newCharacter()
	Step(c, IntentFor(facing.Right))
	for i := 0; i < 8; i++ {
		c.Animations.Update()
	}
	frame := c.Animations.Frame()

	Step(c, IntentFor(facing.Right))
	if c.Animations.Frame() != frame {
		t.Errorf("Walk restarted from %d to %d", frame, c.Animations.Frame())
	}

	Step(c, IntentFor(facing.Up))
	first, _ := c.Animations.Clip(config.WalkUp)
	if c.Animations.Frame() != first.First {
		t.Errorf("Switching direction should restart at %d, got %d", first.First, c.Animations.Frame())
	}
}

func TestCorruptedFacingPanics(t *testing.T) {
	c := newCharacter()
	c.Facing = facing.Direction(99)

	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for an invalid facing")
		}
	}()
	Step(c, Intent{})
}

func TestWandererRespectsTimingAndSpeed(t *testing.T) {
	cfg := config.NPC
	cfg.IdleChance = 0
	c := character.New("Kevin", character.KindNPC, cfg.CharacterConfig, character.NewAnimationSet(config.CharacterSheet, 60))
	w := NewWanderer(c, cfg, 42)

	w.Update(0, 1.0/60)
	first := w.Intent()
	if _, ok := first.Direction(); !ok {
		t.Fatal("Expected a walking decision with IdleChance 0")
	}
	if speed := c.VelocityX + c.VelocityY; speed != 60 && speed != -60 {
		t.Errorf("Expected NPC speed 60, got (%v, %v)", c.VelocityX, c.VelocityY)
	}

	// The first decision lasts at least WanderMinSeconds.
	for i := 0; i < 50; i++ {
		w.Update(0, 1.0/60)
		if w.Intent() != first {
			t.Fatalf("Decision changed after %d frames", i+1)
		}
	}
}

func TestWandererIdles(t *testing.T) {
	cfg := config.NPC
	cfg.IdleChance = 1
	c := character.New("Alicia", character.KindNPC, cfg.CharacterConfig, character.NewAnimationSet(config.CharacterSheet, 60))
	w := NewWanderer(c, cfg, 7)

	for i := 0; i < 300; i++ {
		w.Update(0, 1.0/60)
		if c.VelocityX != 0 || c.VelocityY != 0 {
			t.Fatal("Idle wanderer moved")
		}
	}
	if c.Animations.Current != config.IdleDown {
		t.Errorf("Expected IDLE_DOWN, got %v", c.Animations.Current)
	}
}
