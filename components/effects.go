package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData drives the highlight flash after a hit or catch. The tween runs
// the overlay alpha back down to zero and is dropped when finished.
type FlashData struct {
	Tween   *gween.Tween
	Alpha   float32
	R, G, B float32
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashData deforms the sprite scale on launch and tweens it back.
type SquashData struct {
	Seq            *gween.Sequence
	ScaleX, ScaleY float64
}

var Squash = donburi.NewComponentType[SquashData]()
