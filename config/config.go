package config

import "image/color"

// CharacterConfig contains movement and body values for a character archetype
type CharacterConfig struct {
	// Movement, pixels per second on each axis
	VelocityX float64
	VelocityY float64

	// Dimensions
	FrameWidth  int
	FrameHeight int
	BBoxWidth   int // body footprint, anchored bottom-centre of the frame
	BBoxHeight  int
}

// NPCConfig contains wandering behaviour for non-player characters
type NPCConfig struct {
	CharacterConfig

	WanderMinSeconds float64
	WanderMaxSeconds float64
	IdleChance       float64 // 0.0-1.0, chance that a new decision is to stand still
}

// NPCDef places a named non-player character in a map
type NPCDef struct {
	Name       string
	SpawnPoint string
	SkinTint   color.RGBA
	HairTint   color.RGBA
}

// MapDef describes one playable map
type MapDef struct {
	Key  string
	File string // TMX path inside the embedded levels directory
	Zoom float64
	NPCs []NPCDef
}

// MapConfig contains world construction configuration
type MapConfig struct {
	TileSize          int
	CellSize          int // resolv broadphase cell size
	StartMap          string
	DefaultSpawnPoint string

	// Draw depths. Terrain layers share [0, PlayerDepth); above-player layers
	// use AbovePlayerDepth.
	PlayerDepth      float64
	AbovePlayerDepth float64

	Maps map[string]MapDef
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// TransitionConfig controls the fade covering a map change
type TransitionConfig struct {
	FadeSeconds float64
	FadeColor   color.RGBA
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowCollisionObjects bool
	ShowHUD              bool
	CollisionColor       color.RGBA
	TransitionColor      color.RGBA
	BodyColor            color.RGBA
	HUDTextColor         color.RGBA
	HUDFontSize          float64
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player CharacterConfig
var NPC NPCConfig
var Map MapConfig
var Camera CameraConfig
var Transition TransitionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange  = color.RGBA{R: 0xf3, G: 0x86, B: 0x30, A: 153} // 0xf38630 at 0.6 alpha
	Cyan    = color.RGBA{R: 0x30, G: 0xc8, B: 0xf3, A: 153}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 153}
)

func init() {
	C = &Config{
		Title:  "Homestead",
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = CharacterConfig{
		VelocityX:   140,
		VelocityY:   140,
		FrameWidth:  64,
		FrameHeight: 64,
		BBoxWidth:   20,
		BBoxHeight:  10,
	}

	NPC = NPCConfig{
		CharacterConfig: CharacterConfig{
			VelocityX:   60,
			VelocityY:   60,
			FrameWidth:  64,
			FrameHeight: 64,
			BBoxWidth:   20,
			BBoxHeight:  10,
		},
		WanderMinSeconds: 1,
		WanderMaxSeconds: 3,
		IdleChance:       0.4,
	}

	Map = MapConfig{
		TileSize:          32,
		CellSize:          16,
		StartMap:          "farm",
		DefaultSpawnPoint: "player_start",
		PlayerDepth:       5,
		AbovePlayerDepth:  10,
		Maps: map[string]MapDef{
			"farm": {
				Key:  "farm",
				File: "farm.tmx",
				Zoom: 1,
				NPCs: []NPCDef{
					{
						Name:       "Tristam",
						SpawnPoint: "npc_tristam",
						SkinTint:   color.RGBA{R: 120, G: 80, B: 55, A: 255},
						HairTint:   color.RGBA{R: 30, G: 30, B: 30, A: 255},
					},
					{
						Name:       "Kevin",
						SpawnPoint: "npc_kevin",
						SkinTint:   color.RGBA{R: 95, G: 110, B: 120, A: 255},
						HairTint:   color.RGBA{R: 190, G: 80, B: 40, A: 255},
					},
					{
						Name:       "Alicia",
						SpawnPoint: "npc_alicia",
						SkinTint:   color.RGBA{R: 215, G: 170, B: 120, A: 255},
						HairTint:   color.RGBA{R: 200, G: 240, B: 240, A: 255},
					},
				},
			},
			"farm_house_bedroom": {
				Key:  "farm_house_bedroom",
				File: "farm_house_bedroom.tmx",
				Zoom: 2,
			},
		},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Transition = TransitionConfig{
		FadeSeconds: 0.25,
		FadeColor:   Black,
	}

	Debug = DebugConfig{
		ShowCollisionObjects: false,
		ShowHUD:              false,
		CollisionColor:       Orange,
		TransitionColor:      Cyan,
		BodyColor:            Magenta,
		HUDTextColor:         White,
		HUDFontSize:          10,
	}
}
