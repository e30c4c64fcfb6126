package character

import (
	"errors"
	"testing"

	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/facing"
	"github.com/automoto/homestead/tags"
)

func TestBottomCenter(t *testing.T) {
	box := BottomCenter(64, 64, 20, 10)
	if box.OffsetX != 22 || box.OffsetY != 54 || box.W != 20 || box.H != 10 {
		t.Errorf("Unexpected box %+v", box)
	}
}

func TestNewBuildsTaggedParts(t *testing.T) {
	c := New("Blockost", KindPlayer, config.Player, nil)

	if c.Facing != facing.Down {
		t.Errorf("Expected a new character to face down, got %v", c.Facing)
	}
	for id, part := range c.Parts {
		if part == nil {
			t.Fatalf("Part %v is nil", PartID(id))
		}
		if !part.HasTags(tags.ResolvCharacter) || !part.HasTags(PartID(id).String()) {
			t.Errorf("Part %v missing tags %v", PartID(id), part.Tags())
		}
		owner, got, ok := FromObject(part)
		if !ok || owner != c || got != PartID(id) {
			t.Errorf("FromObject(%v) = %v, %v, %v", PartID(id), owner, got, ok)
		}
	}
	if c.Body() != c.Parts[PartBody] {
		t.Error("Body should be the body part")
	}
}

func TestSetPositionAnchorsBoxAtFeet(t *testing.T) {
	c := New("Blockost", KindPlayer, config.Player, nil)
	c.SetPosition(100, 200)

	for id, part := range c.Parts {
		if part.X != 90 || part.Y != 222 || part.W != 20 || part.H != 10 {
			t.Errorf("Part %v at (%v, %v) %vx%v", PartID(id), part.X, part.Y, part.W, part.H)
		}
	}
}

func TestSpawnAt(t *testing.T) {
	anims := NewAnimationSet(config.CharacterSheet, 60)
	c := New("Blockost", KindPlayer, config.Player, anims)
	c.VelocityX = 140

	if err := c.SpawnAt(10, 20, facing.Left); err != nil {
		t.Fatalf("SpawnAt returned error: %v", err)
	}
	if c.X != 10 || c.Y != 20 || c.Facing != facing.Left || c.VelocityX != 0 {
		t.Errorf("Unexpected state after spawn: %+v", c)
	}
	if anims.Current != config.IdleLeft {
		t.Errorf("Expected IDLE_LEFT, got %v", anims.Current)
	}

	if err := c.SpawnAt(0, 0, facing.Direction(0)); !errors.Is(err, facing.ErrInvalidDirection) {
		t.Errorf("Expected ErrInvalidDirection, got %v", err)
	}
	if c.X != 10 {
		t.Error("Failed spawn should not move the character")
	}
}

func TestAnimationSetFrames(t *testing.T) {
	s := NewAnimationSet(config.CharacterSheet, 60)

	tests := []struct {
		id          config.AnimationID
		first, last int
	}{
		{config.WalkUp, 105, 111},
		{config.WalkLeft, 118, 124},
		{config.WalkDown, 131, 137},
		{config.WalkRight, 144, 150},
		{config.IdleUp, 104, 104},
		{config.IdleRight, 143, 143},
	}
	for _, tc := range tests {
		clip, ok := s.Clip(tc.id)
		if !ok {
			t.Fatalf("Missing clip %v", tc.id)
		}
		if clip.First != tc.first || clip.Last != tc.last {
			t.Errorf("%v spans [%d, %d], expected [%d, %d]", tc.id, clip.First, clip.Last, tc.first, tc.last)
		}
	}
	if s.Frame() != -1 {
		t.Errorf("Expected no frame before Play, got %d", s.Frame())
	}
}

func TestPlayIsIdempotent(t *testing.T) {
	s := NewAnimationSet(config.CharacterSheet, 60)

	if !s.Play(config.WalkDown) {
		t.Fatal("First Play should start the clip")
	}
	for i := 0; i < 12; i++ {
		s.Update()
	}
	advanced := s.Frame()
	if advanced == 131 {
		t.Fatal("Expected the walk cycle to advance")
	}

	if s.Play(config.WalkDown) {
		t.Error("Replaying the active clip should not restart it")
	}
	if s.Frame() != advanced {
		t.Errorf("Frame reset from %d to %d", advanced, s.Frame())
	}

	if !s.Play(config.WalkLeft) || s.Frame() != 118 {
		t.Errorf("Switching clips should restart at 118, got %d", s.Frame())
	}
	if !s.Play(config.WalkDown) || s.Frame() != 131 {
		t.Errorf("Switching back should restart at 131, got %d", s.Frame())
	}
	if s.Play(config.AnimationNone) {
		t.Error("Unknown clips should be ignored")
	}
}
