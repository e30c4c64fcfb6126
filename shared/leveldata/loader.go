package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/homestead/shared/facing"
	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file and returns its map data. It takes an fs.FS so
// callers can pass embed.FS (game) or os.DirFS (tools).
func Load(fsys fs.FS, key, tmxPath string) (*MapData, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return Parse(key, m)
}

// Parse derives map data from an already loaded TMX map. Any error means the
// map content is unusable and no partial result is returned.
func Parse(key string, m *tiled.Map) (*MapData, error) {
	data := &MapData{
		Key:        key,
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
	}

	for i, layer := range m.Layers {
		data.Layers = append(data.Layers, LayerData{
			Name:        layer.Name,
			Index:       i,
			Visible:     layer.Visible,
			AbovePlayer: layer.Name == AbovePlayerLayer,
		})
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case CollisionLayer:
			if err := parseCollisions(data, og.Objects); err != nil {
				return nil, fmt.Errorf("map %s: %w", key, err)
			}
		case SpawnPointLayer:
			if err := parseSpawnPoints(data, og.Objects); err != nil {
				return nil, fmt.Errorf("map %s: %w", key, err)
			}
		}
	}

	return data, nil
}

func parseCollisions(data *MapData, objects []*tiled.Object) error {
	for _, o := range objects {
		// Invisible objects only help level design in Tiled.
		if !o.Visible {
			continue
		}
		if !isRectangle(o) {
			return fmt.Errorf("%w: object %d %q (use rectangle objects for collisions)", ErrNonRectangular, o.ID, o.Name)
		}

		rect := CollisionRect{
			ID:   o.ID,
			Name: o.Name,
			X:    o.X,
			Y:    o.Y,
			W:    o.Width,
			H:    o.Height,
		}

		target, hasTarget := property(o.Properties, PropTransitionTo)
		spawn, hasSpawn := property(o.Properties, PropTargetSpawnPoint)
		switch {
		case hasTarget && hasSpawn:
			rect.TransitionTo = target
			rect.TargetSpawnPoint = spawn
		case hasTarget || hasSpawn:
			data.Warnings = append(data.Warnings, fmt.Sprintf(
				"collision object %d %q needs both %s and %s to be a transition; treating it as a plain collision",
				o.ID, o.Name, PropTransitionTo, PropTargetSpawnPoint))
		}

		data.Collisions = append(data.Collisions, rect)
	}
	return nil
}

func parseSpawnPoints(data *MapData, objects []*tiled.Object) error {
	seen := make(map[string]bool, len(objects))
	for _, o := range objects {
		if seen[o.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSpawnPoint, o.Name)
		}
		seen[o.Name] = true

		raw, _ := property(o.Properties, PropFacingDirection)
		dir, err := facing.Parse(raw)
		if err != nil {
			return fmt.Errorf("spawn point %q: %w", o.Name, err)
		}

		data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
			Name:   o.Name,
			X:      o.X,
			Y:      o.Y,
			Facing: dir,
		})
	}
	return nil
}

// isRectangle reports whether o is a plain, unrotated rectangle object.
// Tile objects, ellipses, polygons and polylines all carry extra data.
func isRectangle(o *tiled.Object) bool {
	return o.GID == 0 &&
		o.Rotation == 0 &&
		len(o.Ellipses) == 0 &&
		len(o.Polygons) == 0 &&
		len(o.PolyLines) == 0
}

func property(props tiled.Properties, name string) (string, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// LoadAll discovers all .tmx files in dir within fsys, loads each, and returns
// a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*MapData, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*MapData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		stem := strings.TrimSuffix(path.Base(p), ".tmx")
		data, err := Load(fsys, stem, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		maps[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return maps, names, nil
}
