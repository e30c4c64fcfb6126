package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/homestead/shared/facing"
	"github.com/lafriks/go-tiled"
)

func rect(id uint32, name string, x, y, w, h float64) *tiled.Object {
	return &tiled.Object{ID: id, Name: name, X: x, Y: y, Width: w, Height: h, Visible: true}
}

func spawn(name string, x, y float64, dir string) *tiled.Object {
	return &tiled.Object{
		Name:       name,
		X:          x,
		Y:          y,
		Visible:    true,
		Properties: tiled.Properties{{Name: PropFacingDirection, Value: dir}},
	}
}

func testMap(groups ...*tiled.ObjectGroup) *tiled.Map {
	return &tiled.Map{
		Width:        10,
		Height:       8,
		TileWidth:    32,
		TileHeight:   32,
		Layers:       []*tiled.Layer{{Name: "ground", Visible: true}, {Name: AbovePlayerLayer, Visible: true}},
		ObjectGroups: groups,
	}
}

func TestParseDerivesPlainAndTransitionObjects(t *testing.T) {
	hidden := rect(2, "hint", 64, 0, 32, 32)
	hidden.Visible = false

	door := rect(3, "door", 128, 0, 32, 16)
	door.Properties = tiled.Properties{
		{Name: PropTransitionTo, Value: "farm_house"},
		{Name: PropTargetSpawnPoint, Value: "front_door"},
	}

	m := testMap(&tiled.ObjectGroup{
		Name:    CollisionLayer,
		Objects: []*tiled.Object{rect(1, "fence", 0, 0, 32, 32), hidden, door},
	})

	data, err := Parse("farm", m)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(data.Collisions) != 2 {
		t.Fatalf("Expected 2 collision rects, got %d", len(data.Collisions))
	}

	var plain, triggers int
	for _, c := range data.Collisions {
		if c.ID == hidden.ID {
			t.Errorf("Invisible object %d should not be materialized", c.ID)
		}
		if c.IsTransition() {
			triggers++
			if c.TransitionTo != "farm_house" || c.TargetSpawnPoint != "front_door" {
				t.Errorf("Unexpected trigger target (%q, %q)", c.TransitionTo, c.TargetSpawnPoint)
			}
		} else {
			plain++
		}
	}
	if plain != 1 || triggers != 1 {
		t.Errorf("Expected 1 plain and 1 trigger, got %d and %d", plain, triggers)
	}
}

func TestParseLayers(t *testing.T) {
	data, err := Parse("farm", testMap())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(data.Layers) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(data.Layers))
	}
	if data.Layers[0].AbovePlayer {
		t.Error("ground layer should not be above the player")
	}
	if !data.Layers[1].AbovePlayer || data.Layers[1].Index != 1 {
		t.Errorf("Unexpected above layer %+v", data.Layers[1])
	}
	if data.PixelWidth() != 320 || data.PixelHeight() != 256 {
		t.Errorf("Expected 320x256 pixels, got %dx%d", data.PixelWidth(), data.PixelHeight())
	}
	if len(data.Collisions) != 0 || len(data.SpawnPoints) != 0 {
		t.Error("Missing object layers should produce empty sets")
	}
}

func TestParseRejectsNonRectangularShapes(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *tiled.Object)
	}{
		{"ellipse", func(o *tiled.Object) { o.Ellipses = []*tiled.Ellipse{{}} }},
		{"polygon", func(o *tiled.Object) { o.Polygons = []*tiled.Polygon{{}} }},
		{"polyline", func(o *tiled.Object) { o.PolyLines = []*tiled.PolyLine{{}} }},
		{"tile", func(o *tiled.Object) { o.GID = 7 }},
		{"rotated", func(o *tiled.Object) { o.Rotation = 45 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := rect(1, "bad", 0, 0, 16, 16)
			tc.modify(o)
			_, err := Parse("farm", testMap(&tiled.ObjectGroup{Name: CollisionLayer, Objects: []*tiled.Object{o}}))
			if !errors.Is(err, ErrNonRectangular) {
				t.Errorf("Expected ErrNonRectangular, got %v", err)
			}
		})
	}
}

func TestParseIgnoresInvisibleNonRectangularShapes(t *testing.T) {
	o := rect(1, "sketch", 0, 0, 16, 16)
	o.Polygons = []*tiled.Polygon{{}}
	o.Visible = false

	data, err := Parse("farm", testMap(&tiled.ObjectGroup{Name: CollisionLayer, Objects: []*tiled.Object{o}}))
	if err != nil {
		t.Fatalf("Invisible shapes should be dropped before validation, got %v", err)
	}
	if len(data.Collisions) != 0 {
		t.Errorf("Expected no collisions, got %d", len(data.Collisions))
	}
}

func TestParseWarnsOnHalfTransition(t *testing.T) {
	o := rect(4, "gate", 0, 0, 16, 16)
	o.Properties = tiled.Properties{{Name: PropTransitionTo, Value: "town"}}

	data, err := Parse("farm", testMap(&tiled.ObjectGroup{Name: CollisionLayer, Objects: []*tiled.Object{o}}))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if data.Collisions[0].IsTransition() {
		t.Error("Object without targetSpawnPoint should stay a plain collision")
	}
	if len(data.Warnings) != 1 || !strings.Contains(data.Warnings[0], "gate") {
		t.Errorf("Expected one warning naming the object, got %v", data.Warnings)
	}
}

func TestParseSpawnPoints(t *testing.T) {
	m := testMap(&tiled.ObjectGroup{
		Name:    SpawnPointLayer,
		Objects: []*tiled.Object{spawn("player_start", 100, 120, "RIGHT"), spawn("bedroom_door", 40, 60, "up")},
	})

	data, err := Parse("farm", m)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(data.SpawnPoints) != 2 {
		t.Fatalf("Expected 2 spawn points, got %d", len(data.SpawnPoints))
	}
	sp := data.SpawnPoints[0]
	if sp.Name != "player_start" || sp.X != 100 || sp.Y != 120 || sp.Facing != facing.Right {
		t.Errorf("Unexpected spawn point %+v", sp)
	}
	if data.SpawnPoints[1].Facing != facing.Up {
		t.Errorf("Expected UP, got %v", data.SpawnPoints[1].Facing)
	}
}

func TestParseSpawnPointErrors(t *testing.T) {
	t.Run("bad facing", func(t *testing.T) {
		m := testMap(&tiled.ObjectGroup{Name: SpawnPointLayer, Objects: []*tiled.Object{spawn("a", 0, 0, "NORTH")}})
		if _, err := Parse("farm", m); !errors.Is(err, facing.ErrInvalidDirection) {
			t.Errorf("Expected ErrInvalidDirection, got %v", err)
		}
	})

	t.Run("missing facing", func(t *testing.T) {
		o := spawn("a", 0, 0, "")
		o.Properties = nil
		m := testMap(&tiled.ObjectGroup{Name: SpawnPointLayer, Objects: []*tiled.Object{o}})
		if _, err := Parse("farm", m); !errors.Is(err, facing.ErrInvalidDirection) {
			t.Errorf("Expected ErrInvalidDirection, got %v", err)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		m := testMap(&tiled.ObjectGroup{Name: SpawnPointLayer, Objects: []*tiled.Object{
			spawn("a", 0, 0, "UP"), spawn("a", 10, 10, "DOWN"),
		}})
		if _, err := Parse("farm", m); !errors.Is(err, ErrDuplicateSpawnPoint) {
			t.Errorf("Expected ErrDuplicateSpawnPoint, got %v", err)
		}
	})
}

const farmTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="4">
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
0,0,0,0
</data>
 </layer>
 <objectgroup id="2" name="collisions">
  <object id="1" name="fence" x="0" y="0" width="32" height="16"/>
  <object id="2" name="door" x="64" y="0" width="32" height="16">
   <properties>
    <property name="transitionTo" value="house"/>
    <property name="targetSpawnPoint" value="front_door"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="spawn_points">
  <object id="3" name="player_start" x="48" y="64">
   <properties>
    <property name="facingDirection" value="DOWN"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const houseTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="2">
 <layer id="1" name="floor" width="2" height="2">
  <data encoding="csv">
0,0,
0,0
</data>
 </layer>
 <objectgroup id="2" name="spawn_points">
  <object id="1" name="front_door" x="32" y="48">
   <properties>
    <property name="facingDirection" value="UP"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/farm.tmx":  {Data: []byte(farmTMX)},
		"levels/house.tmx": {Data: []byte(houseTMX)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}

	maps, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(names) != 2 || names[0] != "farm" || names[1] != "house" {
		t.Fatalf("Expected [farm house], got %v", names)
	}

	farm := maps["farm"]
	if farm.Key != "farm" || farm.Width != 4 || farm.TileWidth != 32 {
		t.Errorf("Unexpected farm header %+v", farm)
	}
	if len(farm.Collisions) != 2 {
		t.Fatalf("Expected 2 farm collisions, got %d", len(farm.Collisions))
	}
	if !farm.Collisions[1].IsTransition() {
		t.Error("Expected door to be a transition")
	}
	if len(farm.SpawnPoints) != 1 || farm.SpawnPoints[0].Facing != facing.Down {
		t.Errorf("Unexpected farm spawn points %+v", farm.SpawnPoints)
	}

	if err := ValidateLinks(maps); err != nil {
		t.Errorf("Expected links to validate, got %v", err)
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	if _, _, err := LoadAll(fstest.MapFS{"levels/readme.md": {}}, "levels"); err == nil {
		t.Fatal("Expected an error for a directory without TMX files")
	}
}

func TestValidateLinksReportsBrokenTargets(t *testing.T) {
	maps := map[string]*MapData{
		"farm": {
			Key: "farm",
			Collisions: []CollisionRect{
				{ID: 1, TransitionTo: "house", TargetSpawnPoint: "back_door"},
				{ID: 2, TransitionTo: "town", TargetSpawnPoint: "gate"},
				{ID: 3},
			},
		},
		"house": {
			Key:         "house",
			SpawnPoints: []SpawnPoint{{Name: "front_door", Facing: facing.Up}},
		},
	}

	err := ValidateLinks(maps)
	if !errors.Is(err, ErrBrokenLink) {
		t.Fatalf("Expected ErrBrokenLink, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "back_door") || !strings.Contains(msg, "town") {
		t.Errorf("Expected both broken links reported, got %q", msg)
	}
}
