package components

import "github.com/yohamta/donburi"

// CameraData scrolls the viewport vertically across the arena overscan.
// Scrolling shifts the pointer's arena position, so the input system treats
// a wheel turn exactly like a pointer move.
type CameraData struct {
	Y    float64 // top of the viewport in arena coordinates
	MaxY float64 // arena height minus viewport height
}

var Camera = donburi.NewComponentType[CameraData]()
