package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/config/keys"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Connected pads, refreshed each frame.
var pads []ebiten.GamepadID

// UpdateInput samples every bound action for this frame. It runs first so
// that the player system sees the same snapshot as the settings toggles.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// A scene that has not finished Create yet ignores devices.
	if !input.Bound {
		return
	}

	pads = ebiten.AppendGamepadIDs(pads[:0])
	for id, binding := range keys.Input.Bindings {
		input.Current[id] = held(binding, pads)
	}

	stick := stickDirections(pads)
	for id, on := range stick {
		if on {
			input.Current[id] = true
		}
	}
}

func held(b keys.Binding, pads []ebiten.GamepadID) bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
				return true
			}
		}
	}
	return false
}

// stickDirections maps the left stick of every pad onto the move actions.
func stickDirections(pads []ebiten.GamepadID) map[cfg.ActionID]bool {
	dz := keys.Input.AnalogDeadzone
	out := map[cfg.ActionID]bool{}
	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickVertical)
		out[cfg.ActionMoveLeft] = out[cfg.ActionMoveLeft] || h < -dz
		out[cfg.ActionMoveRight] = out[cfg.ActionMoveRight] || h > dz
		out[cfg.ActionMoveUp] = out[cfg.ActionMoveUp] || v < -dz
		out[cfg.ActionMoveDown] = out[cfg.ActionMoveDown] || v > dz
	}
	return out
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// BindInput starts polling devices for the scene owning ecs.
func BindInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Bound = true
}

// ResetInput forgets every held action, so keys held when a scene goes to
// sleep are not seen as pressed when it wakes. Bindings are kept.
func ResetInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Current = [cfg.ActionCount]bool{}
	input.Previous = [cfg.ActionCount]bool{}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
