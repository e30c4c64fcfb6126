package world

import (
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/automoto/homestead/tags"
	"github.com/solarlune/resolv"
)

// Kind separates plain obstacles from map transition triggers.
type Kind int

const (
	KindPlain Kind = iota
	KindTransition
)

func (k Kind) String() string {
	if k == KindTransition {
		return "transition"
	}
	return "plain"
}

// Rect is an axis-aligned rectangle in map pixels.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func objectRect(o *resolv.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// CollisionObject is a static obstacle or transition trigger derived from the
// collisions layer of a map.
type CollisionObject struct {
	ID     uint32
	Name   string
	Kind   Kind
	Bounds Rect

	// Set only for KindTransition.
	TargetMap        string
	TargetSpawnPoint string

	Object *resolv.Object
}

// Blocks reports whether characters are stopped by the object. Transition
// triggers are walked into, not around.
func (o *CollisionObject) Blocks() bool {
	return o.Kind == KindPlain
}

func newCollisionObject(r leveldata.CollisionRect) *CollisionObject {
	co := &CollisionObject{
		ID:     r.ID,
		Name:   r.Name,
		Bounds: Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
	}

	objTags := []string{tags.ResolvCollision}
	if r.IsTransition() {
		co.Kind = KindTransition
		co.TargetMap = r.TransitionTo
		co.TargetSpawnPoint = r.TargetSpawnPoint
		objTags = append(objTags, tags.ResolvTransition)
	}

	co.Object = resolv.NewObject(r.X, r.Y, r.W, r.H, objTags...)
	co.Object.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	co.Object.Data = co
	return co
}
