package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// OverlayData is a full-screen colour drawn over the map, used for the
// fade that covers a map change.
type OverlayData struct {
	Color color.RGBA
	Alpha float64
}

var Overlay = donburi.NewComponentType[OverlayData]()
