// Package world turns parsed map data into a live collision world: static
// collision objects, transition triggers, spawn points and the collider
// bindings between those objects and the characters walking the map.
package world

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/automoto/homestead/character"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/automoto/homestead/tags"
	"github.com/solarlune/resolv"
)

var (
	// ErrSpawnPointNotFound is returned when a map has no spawn point by the requested name.
	ErrSpawnPointNotFound = errors.New("spawn point not found")
	// ErrDestroyed is returned when binding to a world that was torn down.
	ErrDestroyed = errors.New("world destroyed")
)

// Layer is a tile layer with its draw depth. Terrain layers sit below
// characters, above-player layers sit over them.
type Layer struct {
	Name        string
	Index       int
	Depth       float64
	Visible     bool
	AbovePlayer bool
}

// TransitionRequest asks the scene owner to move the player to another map.
type TransitionRequest struct {
	SourceMap        string
	TargetMap        string
	TargetSpawnPoint string
}

type Options struct {
	Logger   *log.Logger
	CellSize int

	PlayerDepth      float64
	AbovePlayerDepth float64

	// OnTransition receives at most one request per World.
	OnTransition func(TransitionRequest)
	// OnCollide is called when a character body runs into a plain object.
	OnCollide func(c *character.Character, obj *CollisionObject)
}

type World struct {
	MapKey        string
	Width, Height float64
	Layers        []Layer

	objects     []*CollisionObject
	spawnPoints []leveldata.SpawnPoint
	spawnIndex  map[string]int
	space       *resolv.Space
	bindings    map[*character.Character]map[*CollisionObject]struct{}

	opts          Options
	log           *log.Logger
	transitioning bool
	destroyed     bool
}

// Build derives a world from map data. On error nothing is returned, so a
// partially built world is never reachable.
func Build(data *leveldata.MapData, opts Options) (*World, error) {
	if data == nil {
		return nil, errors.New("build world: nil map data")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.CellSize <= 0 {
		opts.CellSize = config.Map.CellSize
	}
	if opts.PlayerDepth == 0 && opts.AbovePlayerDepth == 0 {
		opts.PlayerDepth = config.Map.PlayerDepth
		opts.AbovePlayerDepth = config.Map.AbovePlayerDepth
	}

	w := &World{
		MapKey:     data.Key,
		Width:      float64(data.PixelWidth()),
		Height:     float64(data.PixelHeight()),
		Layers:     layerDepths(data.Layers, opts.PlayerDepth, opts.AbovePlayerDepth),
		spawnIndex: make(map[string]int, len(data.SpawnPoints)),
		bindings:   make(map[*character.Character]map[*CollisionObject]struct{}),
		opts:       opts,
		log:        opts.Logger,
	}

	for _, r := range data.Collisions {
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("build world %s: %w: object %d %q has no area", data.Key, leveldata.ErrNonRectangular, r.ID, r.Name)
		}
		w.objects = append(w.objects, newCollisionObject(r))
	}

	for _, sp := range data.SpawnPoints {
		if _, dup := w.spawnIndex[sp.Name]; dup {
			return nil, fmt.Errorf("build world %s: %w: %q", data.Key, leveldata.ErrDuplicateSpawnPoint, sp.Name)
		}
		if !sp.Facing.Valid() {
			return nil, fmt.Errorf("build world %s: spawn point %q has invalid facing %v", data.Key, sp.Name, sp.Facing)
		}
		w.spawnIndex[sp.Name] = len(w.spawnPoints)
		w.spawnPoints = append(w.spawnPoints, sp)
	}

	cell := opts.CellSize
	w.space = resolv.NewSpace(max(data.PixelWidth(), cell), max(data.PixelHeight(), cell), cell, cell)
	for _, o := range w.objects {
		w.space.Add(o.Object)
	}

	for _, warning := range data.Warnings {
		w.log.Printf("world %s: %s", data.Key, warning)
	}
	w.log.Printf("world %s: built %d plain objects, %d transitions, %d spawn points",
		data.Key, len(w.Plain()), len(w.Triggers()), len(w.spawnPoints))

	return w, nil
}

func layerDepths(layers []leveldata.LayerData, playerDepth, aboveDepth float64) []Layer {
	terrain := 0
	for _, l := range layers {
		if !l.AbovePlayer {
			terrain++
		}
	}

	out := make([]Layer, 0, len(layers))
	k := 0
	for _, l := range layers {
		layer := Layer{Name: l.Name, Index: l.Index, Visible: l.Visible, AbovePlayer: l.AbovePlayer}
		if l.AbovePlayer {
			layer.Depth = aboveDepth
		} else {
			layer.Depth = playerDepth * float64(k) / float64(terrain)
			k++
		}
		out = append(out, layer)
	}
	return out
}

// SpawnPoint looks up a spawn point by exact name.
func (w *World) SpawnPoint(name string) (leveldata.SpawnPoint, error) {
	i, ok := w.spawnIndex[name]
	if !ok {
		return leveldata.SpawnPoint{}, fmt.Errorf("%w: %q in map %s", ErrSpawnPointNotFound, name, w.MapKey)
	}
	return w.spawnPoints[i], nil
}

// SpawnPoints returns the map's spawn points in map order.
func (w *World) SpawnPoints() []leveldata.SpawnPoint {
	return append([]leveldata.SpawnPoint(nil), w.spawnPoints...)
}

// Place moves c to the named spawn point and turns it to the spawn facing.
func (w *World) Place(c *character.Character, spawnPoint string) error {
	sp, err := w.SpawnPoint(spawnPoint)
	if err != nil {
		return err
	}
	return c.SpawnAt(sp.X, sp.Y, sp.Facing)
}

// Objects returns every collision object in the world.
func (w *World) Objects() []*CollisionObject {
	return append([]*CollisionObject(nil), w.objects...)
}

// Plain returns the collision objects that are not transitions.
func (w *World) Plain() []*CollisionObject {
	return w.filter(KindPlain)
}

// Triggers returns the transition triggers.
func (w *World) Triggers() []*CollisionObject {
	return w.filter(KindTransition)
}

func (w *World) filter(kind Kind) []*CollisionObject {
	var out []*CollisionObject
	for _, o := range w.objects {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// BindCharacter adds c's parts to the world and binds them against every
// collision object. Existing bindings for c are released first.
func (w *World) BindCharacter(c *character.Character) error {
	if w.destroyed {
		return fmt.Errorf("bind %s to %s: %w", c.Name, w.MapKey, ErrDestroyed)
	}
	w.Release(c)

	for _, p := range c.Parts {
		if p.Space != nil {
			p.Space.Remove(p)
		}
		w.space.Add(p)
	}

	set := make(map[*CollisionObject]struct{}, len(w.objects))
	for _, o := range w.objects {
		set[o] = struct{}{}
	}
	w.bindings[c] = set

	w.log.Printf("world %s: bound %s (%s) to %d objects", w.MapKey, c.Name, c.Kind, len(set))
	return nil
}

// Release drops every binding held for c and removes its parts from the world.
func (w *World) Release(c *character.Character) {
	if _, ok := w.bindings[c]; !ok {
		return
	}
	delete(w.bindings, c)
	for _, p := range c.Parts {
		if p.Space == w.space {
			w.space.Remove(p)
		}
	}
}

// Bindings returns the number of live collider bindings for c.
func (w *World) Bindings(c *character.Character) int {
	return len(w.bindings[c])
}

// Bound reports whether c is bound against obj.
func (w *World) Bound(c *character.Character, obj *CollisionObject) bool {
	_, ok := w.bindings[c][obj]
	return ok
}

// Collide is the collider callback for a part of c overlapping obj. Only
// the body part reacts. Plain objects are reported through OnCollide;
// transitions issue a single request, and only for the player.
func (w *World) Collide(c *character.Character, part character.PartID, obj *CollisionObject) bool {
	if w.destroyed || part != character.PartBody || !w.Bound(c, obj) {
		return false
	}

	switch obj.Kind {
	case KindTransition:
		if c.Kind != character.KindPlayer || w.transitioning {
			return false
		}
		w.transitioning = true
		req := TransitionRequest{
			SourceMap:        w.MapKey,
			TargetMap:        obj.TargetMap,
			TargetSpawnPoint: obj.TargetSpawnPoint,
		}
		w.log.Printf("world %s: %s entered transition %d to %s@%s", w.MapKey, c.Name, obj.ID, req.TargetMap, req.TargetSpawnPoint)
		if w.opts.OnTransition != nil {
			w.opts.OnTransition(req)
		}
	default:
		if w.opts.OnCollide != nil {
			w.opts.OnCollide(c, obj)
		}
	}
	return true
}

// Transitioning reports whether a transition request was already issued.
func (w *World) Transitioning() bool {
	return w.transitioning
}

type hit struct {
	part character.PartID
	obj  *CollisionObject
}

// Move displaces c by dx then dy, one axis at a time. The body is stopped
// by plain objects it is bound against. Every part whose attempted box
// overlaps a bound object raises a collision event once the move is done.
func (w *World) Move(c *character.Character, dx, dy float64) {
	if w.destroyed {
		return
	}

	var hits []hit
	if dx != 0 {
		dx, _, hits = w.sweep(c, dx, 0, hits)
		c.SetPosition(c.X+dx, c.Y)
	}
	if dy != 0 {
		_, dy, hits = w.sweep(c, 0, dy, hits)
		c.SetPosition(c.X, c.Y+dy)
	}

	for _, h := range hits {
		w.Collide(c, h.part, h.obj)
	}
}

func (w *World) sweep(c *character.Character, dx, dy float64, hits []hit) (float64, float64, []hit) {
	bound := w.bindings[c]
	if len(bound) == 0 {
		return dx, dy, hits
	}

	allowedX, allowedY := dx, dy
	for id, part := range c.Parts {
		check := part.Check(pad(dx), pad(dy), tags.ResolvCollision)
		if check == nil {
			continue
		}

		from := objectRect(part)
		to := from.Translate(dx, dy)
		for _, o := range check.Objects {
			obj, ok := o.Data.(*CollisionObject)
			if !ok {
				continue
			}
			if _, ok := bound[obj]; !ok || !to.Overlaps(obj.Bounds) {
				continue
			}
			hits = appendHit(hits, hit{part: character.PartID(id), obj: obj})

			if character.PartID(id) == character.PartBody && obj.Blocks() && !from.Overlaps(obj.Bounds) {
				allowedX, allowedY = clamp(from, obj.Bounds, allowedX, allowedY)
			}
		}
	}
	return allowedX, allowedY, hits
}

// pad widens a broadphase query by a pixel so sub-pixel moves still reach
// objects in the next cell.
func pad(v float64) float64 {
	switch {
	case v > 0:
		return v + 1
	case v < 0:
		return v - 1
	}
	return 0
}

func appendHit(hits []hit, h hit) []hit {
	for _, existing := range hits {
		if existing == h {
			return hits
		}
	}
	return append(hits, h)
}

// clamp shortens a single-axis move so from stops flush against obstacle.
func clamp(from, obstacle Rect, dx, dy float64) (float64, float64) {
	switch {
	case dx > 0:
		dx = math.Min(dx, math.Max(0, obstacle.X-(from.X+from.W)))
	case dx < 0:
		dx = math.Max(dx, math.Min(0, obstacle.X+obstacle.W-from.X))
	case dy > 0:
		dy = math.Min(dy, math.Max(0, obstacle.Y-(from.Y+from.H)))
	case dy < 0:
		dy = math.Max(dy, math.Min(0, obstacle.Y+obstacle.H-from.Y))
	}
	return dx, dy
}

// Destroy tears the world down. All bindings are released and later binds fail.
func (w *World) Destroy() {
	if w.destroyed {
		return
	}
	for c := range w.bindings {
		w.Release(c)
	}
	for _, o := range w.objects {
		w.space.Remove(o.Object)
	}
	w.destroyed = true
	w.log.Printf("world %s: destroyed", w.MapKey)
}

// Destroyed reports whether Destroy was called.
func (w *World) Destroyed() bool {
	return w.destroyed
}
