package base

import "slices"

// Updatable is anything a scene ticks once per frame. time and delta are in
// seconds. Implementations must be comparable (pointer types).
type Updatable interface {
	Update(time, delta float64)
}

// Registry holds a scene's per-frame update participants in registration
// order. Owners add and remove their objects directly.
type Registry struct {
	items []Updatable
}

// Add appends items that are not registered yet.
func (r *Registry) Add(items ...Updatable) {
	for _, it := range items {
		if !r.Contains(it) {
			r.items = append(r.items, it)
		}
	}
}

// Remove drops item. Removing an unknown item does nothing. It is safe to
// call from inside Update.
func (r *Registry) Remove(item Updatable) bool {
	i := slices.Index(r.items, item)
	if i < 0 {
		return false
	}
	r.items = slices.Delete(slices.Clone(r.items), i, i+1)
	return true
}

func (r *Registry) Contains(item Updatable) bool {
	return slices.Contains(r.items, item)
}

func (r *Registry) Len() int {
	return len(r.items)
}

// Clear removes every participant.
func (r *Registry) Clear() {
	r.items = nil
}

// Update ticks every participant registered when the call began.
// Participants added or removed during the pass take effect next frame.
func (r *Registry) Update(time, delta float64) {
	for _, it := range r.items {
		it.Update(time, delta)
	}
}
