package leveldata

import (
	"errors"
	"fmt"
	"sort"
)

// ValidateLinks checks that every transition in maps points at a map that
// exists and at a spawn point defined in that map.
func ValidateLinks(maps map[string]*MapData) error {
	keys := make([]string, 0, len(maps))
	for k := range maps {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		for _, c := range maps[key].Collisions {
			if !c.IsTransition() {
				continue
			}
			target, ok := maps[c.TransitionTo]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s object %d targets unknown map %q", ErrBrokenLink, key, c.ID, c.TransitionTo))
				continue
			}
			if !target.hasSpawnPoint(c.TargetSpawnPoint) {
				errs = append(errs, fmt.Errorf("%w: %s object %d targets missing spawn point %q in %s", ErrBrokenLink, key, c.ID, c.TargetSpawnPoint, c.TransitionTo))
			}
		}
	}
	return errors.Join(errs...)
}

func (m *MapData) hasSpawnPoint(name string) bool {
	for _, sp := range m.SpawnPoints {
		if sp.Name == name {
			return true
		}
	}
	return false
}
