// Package base holds the engine-independent part of a map scene: its
// lifecycle, its per-frame update registry and the transition payload
// carried between scenes.
package base

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/world"
)

// ErrMissingSpawnPoint is returned when a scene wakes without a target spawn point.
var ErrMissingSpawnPoint = errors.New("transition data has no target spawn point")

type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseActive
	PhaseSleeping
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseActive:
		return "active"
	case PhaseSleeping:
		return "sleeping"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// TransitionData is the payload handed to a scene when it is entered.
// The zero value is only valid for the first scene of the process.
type TransitionData struct {
	TargetSpawnPointName string
	SourceMap            string
	Carried              map[string]any
}

// Stage is the engine side of a scene the controller drives.
type Stage interface {
	// BuildWorld constructs a fresh world for the scene's map.
	BuildWorld() (*world.World, error)
	// Player is the character placed at the spawn point on activation.
	Player() *character.Character
	BindInput()
	ResetInput()
}

// Controller runs a scene through init, create, sleep and wake.
type Controller struct {
	key      string
	stage    Stage
	log      *log.Logger
	phase    Phase
	data     TransitionData
	world    *world.World
	registry Registry
}

func NewController(key string, stage Stage, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{key: key, stage: stage, log: logger}
}

func (c *Controller) Key() string { return c.key }
func (c *Controller) Phase() Phase { return c.phase }
func (c *Controller) Data() TransitionData { return c.data }
func (c *Controller) Registry() *Registry { return &c.registry }

// World returns the active world, or nil while not active.
func (c *Controller) World() *world.World {
	return c.world
}

// Init stores the transition payload for Create.
func (c *Controller) Init(data TransitionData) {
	c.data = data
	c.phase = PhaseInitializing
	c.log.Printf("scene %s: init from %q to spawn %q", c.key, data.SourceMap, data.TargetSpawnPointName)
}

// Create binds input and activates the scene at the payload's spawn point,
// or at the default spawn point when the payload is empty.
func (c *Controller) Create() error {
	if c.phase != PhaseInitializing {
		return fmt.Errorf("scene %s: create while %s", c.key, c.phase)
	}
	c.stage.BindInput()

	spawn := c.data.TargetSpawnPointName
	if spawn == "" {
		spawn = config.Map.DefaultSpawnPoint
	}
	if err := c.activate(spawn); err != nil {
		return err
	}
	c.log.Printf("scene %s: created at %s", c.key, spawn)
	return nil
}

// Sleep resets input and tears the world down.
func (c *Controller) Sleep() {
	if c.phase != PhaseActive {
		return
	}
	c.stage.ResetInput()
	if c.world != nil {
		c.world.Destroy()
		c.world = nil
	}
	c.phase = PhaseSleeping
	c.log.Printf("scene %s: sleeping", c.key)
}

// Wake rebuilds the world and restores the player at the payload's spawn
// point, facing the spawn point's direction.
func (c *Controller) Wake(data TransitionData) error {
	if c.phase != PhaseSleeping {
		return fmt.Errorf("scene %s: wake while %s", c.key, c.phase)
	}
	if data.TargetSpawnPointName == "" {
		return fmt.Errorf("scene %s: %w", c.key, ErrMissingSpawnPoint)
	}
	if err := c.activate(data.TargetSpawnPointName); err != nil {
		return err
	}
	c.data = data
	c.log.Printf("scene %s: woke at %s from %q", c.key, data.TargetSpawnPointName, data.SourceMap)
	return nil
}

func (c *Controller) activate(spawn string) error {
	w, err := c.stage.BuildWorld()
	if err != nil {
		return fmt.Errorf("scene %s: %w", c.key, err)
	}

	player := c.stage.Player()
	if err := w.BindCharacter(player); err != nil {
		w.Destroy()
		return fmt.Errorf("scene %s: %w", c.key, err)
	}
	if err := w.Place(player, spawn); err != nil {
		w.Destroy()
		return fmt.Errorf("scene %s: %w", c.key, err)
	}

	c.world = w
	c.phase = PhaseActive
	return nil
}

// Update ticks the registry while the scene is active.
func (c *Controller) Update(time, delta float64) {
	if c.phase != PhaseActive {
		return
	}
	c.registry.Update(time, delta)
}
