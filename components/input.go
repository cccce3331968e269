package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dodgebox/dodgebox/config"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the raw cursor reading used to feed the pointer tracker.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Cursor state in screen coordinates.
	CursorX, CursorY int
	CursorInside     bool
	WheelY           float64
	MouseWasDown     bool

	// Window size last frame, to detect resizes.
	LastWinW, LastWinH int
}

var Input = donburi.NewComponentType[InputData]()
