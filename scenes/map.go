package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/scenes/base"
	"github.com/automoto/homestead/systems"
	factory2 "github.com/automoto/homestead/systems/factory"
	"github.com/automoto/homestead/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game, which owns every map scene.
type SceneChanger interface {
	ChangeMap(req world.TransitionRequest) error
}

// MapScene shows one map. It is created once per map key and then put to
// sleep and woken as the player moves between maps.
type MapScene struct {
	key          string
	def          cfg.MapDef
	level        *assets.Map
	sceneChanger SceneChanger
	log          *log.Logger

	ecs        *ecs.ECS
	controller *base.Controller
	levelEntry *donburi.Entry
	player     *character.Character
	npcs       []*donburi.Entry
	overlay    *donburi.Entry
	fade       *base.Fade
	alpha      float64
	elapsed    float64

	pending *world.TransitionRequest
	ready   bool
	once    sync.Once
}

// NewMapScene loads the map registered under key. Nothing is built until
// Start is called.
func NewMapScene(key string, sc SceneChanger, logger *log.Logger) (*MapScene, error) {
	def, ok := cfg.Map.Maps[key]
	if !ok {
		return nil, fmt.Errorf("scene %s: map is not configured", key)
	}
	level, err := assets.LoadMap(key)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", key, err)
	}
	if logger == nil {
		logger = log.Default()
	}

	ms := &MapScene{
		key:          key,
		def:          def,
		level:        level,
		sceneChanger: sc,
		log:          logger,
	}
	ms.controller = base.NewController(key, ms, logger)
	return ms, nil
}

func (ms *MapScene) Key() string { return ms.key }

func (ms *MapScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawCharacters)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawAbovePlayer)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawOverlay)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawHUD)

	ms.ecs = ecs

	ms.levelEntry = factory2.CreateLevel(ms.ecs, ms.key, ms.level, ms.def.Zoom)
	factory2.CreateCamera(ms.ecs, ms.def.Zoom)
	ms.overlay = factory2.CreateOverlay(ms.ecs)
	ms.alpha = 1

	_, ms.player = factory2.CreatePlayer(ms.ecs)
	for _, def := range ms.def.NPCs {
		ms.npcs = append(ms.npcs, factory2.CreateNPC(ms.ecs, def))
	}
}

// BuildWorld derives a fresh world from the map and puts the scene's NPCs
// at their spawn points.
func (ms *MapScene) BuildWorld() (*world.World, error) {
	w, err := world.Build(ms.level.Data, world.Options{
		Logger:       ms.log,
		OnTransition: ms.requestTransition,
	})
	if err != nil {
		return nil, err
	}

	for _, e := range ms.npcs {
		c := components.Character.Get(e).Character
		spawn := components.NPC.Get(e).SpawnPoint
		if err := w.BindCharacter(c); err != nil {
			w.Destroy()
			return nil, err
		}
		if err := w.Place(c, spawn); err != nil {
			w.Destroy()
			return nil, fmt.Errorf("npc %s: %w", c.Name, err)
		}
	}
	return w, nil
}

func (ms *MapScene) Player() *character.Character { return ms.player }
func (ms *MapScene) BindInput() { systems.BindInput(ms.ecs) }
func (ms *MapScene) ResetInput() { systems.ResetInput(ms.ecs) }

// Start enters the scene for the first time.
func (ms *MapScene) Start(data base.TransitionData) error {
	ms.once.Do(ms.configure)
	ms.controller.Init(data)
	if err := ms.controller.Create(); err != nil {
		return err
	}
	ms.activated()
	return nil
}

// Sleep tears the world down and parks the scene until it is woken.
func (ms *MapScene) Sleep() {
	registry := ms.controller.Registry()
	for _, e := range ms.npcs {
		registry.Remove(components.NPC.Get(e).Wanderer)
	}
	if ms.fade != nil {
		registry.Remove(ms.fade)
		ms.fade = nil
	}

	ms.controller.Sleep()
	components.Level.Get(ms.levelEntry).World = nil
	factory2.DestroyCollisionObjects(ms.ecs)
	ms.pending, ms.ready = nil, false
}

// Wake re-enters a sleeping scene at the payload's spawn point.
func (ms *MapScene) Wake(data base.TransitionData) error {
	if err := ms.controller.Wake(data); err != nil {
		return err
	}
	ms.activated()
	return nil
}

func (ms *MapScene) activated() {
	w := ms.controller.World()
	components.Level.Get(ms.levelEntry).World = w
	factory2.CreateCollisionObjects(ms.ecs, w)

	registry := ms.controller.Registry()
	for _, e := range ms.npcs {
		registry.Add(components.NPC.Get(e).Wanderer)
	}

	systems.SnapCamera(ms.ecs)
	ms.startFade(1, 0, nil)
}

// requestTransition is the world's transition callback. The map change
// waits for the fade out and happens at the end of a frame.
func (ms *MapScene) requestTransition(req world.TransitionRequest) {
	if ms.pending != nil {
		return
	}
	ms.pending = &req
	ms.startFade(ms.alpha, 1, func() { ms.ready = true })
}

func (ms *MapScene) startFade(from, to float64, onDone func()) {
	registry := ms.controller.Registry()
	if ms.fade != nil {
		registry.Remove(ms.fade)
	}
	ms.fade = base.StartFade(registry, &ms.alpha, from, to, cfg.Transition.FadeSeconds, onDone)
	ms.syncOverlay()
}

func (ms *MapScene) syncOverlay() {
	components.Overlay.Get(ms.overlay).Alpha = ms.alpha
}

func (ms *MapScene) Update() error {
	ms.once.Do(ms.configure)
	if ms.controller.Phase() != base.PhaseActive {
		return nil
	}

	delta := 1 / float64(ebiten.TPS())
	ms.elapsed += delta
	ms.controller.Update(ms.elapsed, delta)
	ms.ecs.Update()
	ms.syncOverlay()

	if ms.pending == nil || !ms.ready {
		return nil
	}
	req := *ms.pending
	ms.pending, ms.ready = nil, false
	return ms.sceneChanger.ChangeMap(req)
}

func (ms *MapScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}
