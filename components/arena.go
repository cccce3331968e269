package components

import (
	"github.com/yohamta/donburi"

	"github.com/dodgebox/dodgebox/arena"
)

// ArenaData holds the loaded arena geometry shared by the render, debug and
// factory code.
type ArenaData struct {
	Arena *arena.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
