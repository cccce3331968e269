package components

import "github.com/yohamta/donburi"

// ClockData is the scene's monotonic simulation clock in seconds, advanced
// once per frame. Everything downstream receives this injected time; nothing
// in the simulation reads the wall clock directly.
type ClockData struct {
	Now float64
}

var Clock = donburi.NewComponentType[ClockData]()
