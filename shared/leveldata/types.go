// Package leveldata provides TMX map parsing shared by the game and map tooling.
// It has zero dependencies on ebiten, donburi or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/homestead/shared/facing"
)

// Reserved layer names and object property keys used by map authors.
const (
	SpawnPointLayer  = "spawn_points"
	CollisionLayer   = "collisions"
	AbovePlayerLayer = "above_player"

	PropTransitionTo     = "transitionTo"
	PropTargetSpawnPoint = "targetSpawnPoint"
	PropFacingDirection  = "facingDirection"
)

var (
	// ErrNonRectangular marks a collision object that is not an axis-aligned rectangle.
	ErrNonRectangular = errors.New("collision object is not an axis-aligned rectangle")
	// ErrDuplicateSpawnPoint marks two spawn points sharing a name in one map.
	ErrDuplicateSpawnPoint = errors.New("duplicate spawn point")
	// ErrBrokenLink marks a transition whose target map or spawn point does not exist.
	ErrBrokenLink = errors.New("broken transition link")
)

// MapData holds everything the world needs from a TMX map.
type MapData struct {
	Key        string
	Width      int // tiles
	Height     int // tiles
	TileWidth  int
	TileHeight int

	Layers      []LayerData
	Collisions  []CollisionRect
	SpawnPoints []SpawnPoint

	// Warnings are non-fatal authoring problems found while parsing.
	Warnings []string
}

// PixelWidth returns the map width in pixels.
func (m *MapData) PixelWidth() int { return m.Width * m.TileWidth }

// PixelHeight returns the map height in pixels.
func (m *MapData) PixelHeight() int { return m.Height * m.TileHeight }

// LayerData describes one tile layer in map order.
type LayerData struct {
	Name        string
	Index       int
	Visible     bool
	AbovePlayer bool
}

// CollisionRect is a visible rectangle from the collisions layer.
type CollisionRect struct {
	ID         uint32
	Name       string
	X, Y, W, H float64

	// Both set for transition triggers, both empty otherwise.
	TransitionTo     string
	TargetSpawnPoint string
}

// IsTransition reports whether the rectangle leads to another map.
func (r CollisionRect) IsTransition() bool {
	return r.TransitionTo != "" && r.TargetSpawnPoint != ""
}

// SpawnPoint is a named position and facing inside a map.
type SpawnPoint struct {
	Name   string
	X, Y   float64
	Facing facing.Direction
}
