package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// OverrideSpec is the subset of configuration a player may override from a
// YAML file next to the binary. Unset fields keep their defaults.
type OverrideSpec struct {
	Window *struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`
	Player *SpeedSpec `yaml:"player"`
	NPC    *SpeedSpec `yaml:"npc"`
	Map    *struct {
		Start      *string `yaml:"start"`
		SpawnPoint *string `yaml:"spawn_point"`
	} `yaml:"map"`
	Debug *struct {
		Collisions *bool `yaml:"collisions"`
		HUD        *bool `yaml:"hud"`
	} `yaml:"debug"`
	Transition *struct {
		FadeSeconds *float64 `yaml:"fade_seconds"`
	} `yaml:"transition"`
}

type SpeedSpec struct {
	VelocityX *float64 `yaml:"velocity_x"`
	VelocityY *float64 `yaml:"velocity_y"`
}

// ApplyFile overlays the YAML file at path onto the global configuration.
// A missing file is not an error.
func ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the global configuration.
func Apply(data []byte) error {
	var o OverrideSpec
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	if w := o.Window; w != nil {
		setPositive(&C.Width, w.Width)
		setPositive(&C.Height, w.Height)
	}
	if o.Player != nil {
		o.Player.apply(&Player)
	}
	if o.NPC != nil {
		o.NPC.apply(&NPC.CharacterConfig)
	}
	if m := o.Map; m != nil {
		if m.Start != nil {
			if _, ok := Map.Maps[*m.Start]; !ok {
				return fmt.Errorf("config: unknown start map %q", *m.Start)
			}
			Map.StartMap = *m.Start
		}
		if m.SpawnPoint != nil && *m.SpawnPoint != "" {
			Map.DefaultSpawnPoint = *m.SpawnPoint
		}
	}
	if d := o.Debug; d != nil {
		if d.Collisions != nil {
			Debug.ShowCollisionObjects = *d.Collisions
		}
		if d.HUD != nil {
			Debug.ShowHUD = *d.HUD
		}
	}
	if t := o.Transition; t != nil && t.FadeSeconds != nil && *t.FadeSeconds >= 0 {
		Transition.FadeSeconds = *t.FadeSeconds
	}
	return nil
}

func (s *SpeedSpec) apply(c *CharacterConfig) {
	if s.VelocityX != nil && *s.VelocityX > 0 {
		c.VelocityX = *s.VelocityX
	}
	if s.VelocityY != nil && *s.VelocityY > 0 {
		c.VelocityY = *s.VelocityY
	}
}

func setPositive(dst *int, v *int) {
	if v != nil && *v > 0 {
		*dst = *v
	}
}
