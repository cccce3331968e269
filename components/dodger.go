package components

import (
	"github.com/yohamta/donburi"

	"github.com/dodgebox/dodgebox/dodge"
)

// DodgerData owns the dodge controller and mirrors its output signals for
// the render/HUD systems. Positions are interior-frame; the render system
// adds the arena border offset.
type DodgerData struct {
	Ctl   *dodge.Controller
	Sched *dodge.FrameScheduler

	// Border offsets between interior frame and arena coordinates.
	OffsetX float64
	OffsetY float64

	// Mirrored controller signals, updated through the listener.
	X, Y    float64
	Moving  bool
	Hit     bool
	SpawnX  float64
	SpawnY  float64

	// Previous-frame velocities, for bounce detection.
	PrevVX, PrevVY float64

	// Session stats for the HUD.
	Attempts  int
	Catches   int
	EvadeTime float64 // seconds spent moving since the last catch
}

var Dodger = donburi.NewComponentType[DodgerData]()
