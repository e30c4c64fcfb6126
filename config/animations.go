package config

import "github.com/automoto/homestead/shared/facing"

// StripDef locates a walking strip on a character sheet. Offset is the
// 1-based column of its first frame; the column before is the idle pose.
type StripDef struct {
	Row    int
	Length int
	Offset int
}

// SheetLayout describes how character sheets are cut into frames
type SheetLayout struct {
	Columns     int
	Rows        int
	FrameWidth  int
	FrameHeight int
	FrameRate   float32 // frames per second
	Walk        map[facing.Direction]StripDef
}

// CharacterSheet is the layout shared by every character part sheet.
var CharacterSheet = SheetLayout{
	Columns:     13,
	Rows:        21,
	FrameWidth:  64,
	FrameHeight: 64,
	FrameRate:   10,
	Walk: map[facing.Direction]StripDef{
		facing.Up:    {Row: 8, Length: 7, Offset: 1},
		facing.Left:  {Row: 9, Length: 7, Offset: 1},
		facing.Down:  {Row: 10, Length: 7, Offset: 1},
		facing.Right: {Row: 11, Length: 7, Offset: 1},
	},
}
