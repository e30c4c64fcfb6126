package config

import (
	"os"
	"path/filepath"
	"testing"
)

func saveGlobals(t *testing.T) {
	t.Helper()
	c, player, npc, m, debug, transition := *C, Player, NPC, Map, Debug, Transition
	t.Cleanup(func() {
		*C, Player, NPC, Map, Debug, Transition = c, player, npc, m, debug, transition
	})
}

func TestApplyOverridesSubset(t *testing.T) {
	saveGlobals(t)

	err := Apply([]byte(`
window:
  width: 1280
player:
  velocity_x: 200
map:
  start: farm_house_bedroom
  spawn_point: front_door
debug:
  collisions: true
`))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if C.Width != 1280 || C.Height != 360 {
		t.Errorf("Expected 1280x360, got %dx%d", C.Width, C.Height)
	}
	if Player.VelocityX != 200 || Player.VelocityY != 140 {
		t.Errorf("Unexpected player speed %v/%v", Player.VelocityX, Player.VelocityY)
	}
	if Map.StartMap != "farm_house_bedroom" || Map.DefaultSpawnPoint != "front_door" {
		t.Errorf("Unexpected map overrides %q/%q", Map.StartMap, Map.DefaultSpawnPoint)
	}
	if !Debug.ShowCollisionObjects || Debug.ShowHUD {
		t.Error("Expected only collision debug to be enabled")
	}
}

func TestApplyIgnoresNonPositiveValues(t *testing.T) {
	saveGlobals(t)

	if err := Apply([]byte("npc:\n  velocity_x: -5\nwindow:\n  height: 0\n")); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if NPC.VelocityX != 60 || C.Height != 360 {
		t.Errorf("Expected defaults to survive, got npc %v height %d", NPC.VelocityX, C.Height)
	}
}

func TestApplyRejectsUnknownStartMap(t *testing.T) {
	saveGlobals(t)

	if err := Apply([]byte("map:\n  start: moon\n")); err == nil {
		t.Fatal("Expected an error for an unknown start map")
	}
	if Map.StartMap != "farm" {
		t.Errorf("Start map changed to %q", Map.StartMap)
	}
}

func TestApplyFile(t *testing.T) {
	saveGlobals(t)

	if err := ApplyFile(filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("Missing file should not be an error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "homestead.yaml")
	if err := os.WriteFile(path, []byte("window: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ApplyFile(path); err == nil {
		t.Fatal("Expected an error for malformed YAML")
	}
}

func TestAnimationIDs(t *testing.T) {
	for _, tc := range []struct {
		id   AnimationID
		name string
	}{
		{WalkUp, "WALK_UP"},
		{IdleRight, "IDLE_RIGHT"},
		{AnimationNone, "NONE"},
	} {
		if tc.id.String() != tc.name {
			t.Errorf("Expected %s, got %s", tc.name, tc.id)
		}
	}
}
