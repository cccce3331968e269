package tags

import "github.com/yohamta/donburi"

var (
	Dodger = donburi.NewTag().SetName("Dodger")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for the collision space
const (
	ResolvSolid  = "solid"
	ResolvDodger = "dodger"
)
