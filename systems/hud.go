package systems

import (
	"fmt"

	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/fonts"
	"github.com/automoto/homestead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
)

// DrawHUD prints the map, player position and facing while debug is on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug && !cfg.Debug.ShowHUD {
		return
	}

	level := GetLevel(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if level == nil || !ok {
		return
	}
	player := components.Character.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("map: %s", level.Key),
		fmt.Sprintf("pos: %.0f, %.0f", player.X, player.Y),
		fmt.Sprintf("facing: %s", player.Facing),
	}
	if player.Animations != nil {
		lines = append(lines, fmt.Sprintf("anim: %s", player.Animations.Current))
	}
	if w := activeWorld(ecs); w != nil {
		lines = append(lines, fmt.Sprintf("colliders: %d", w.Bindings(player.Character)))
	}

	face := fonts.Small.Get()
	for i, line := range lines {
		y := hudMargin + (i+1)*hudLineHeight
		text.Draw(screen, line, face, hudMargin, y, cfg.Debug.HUDTextColor)
	}
}
