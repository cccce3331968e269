package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/archetypes"
	"github.com/dodgebox/dodgebox/arena"
	"github.com/dodgebox/dodgebox/assets"
	"github.com/dodgebox/dodgebox/components"
)

// CreateArena loads the embedded map and spawns the arena entity.
func CreateArena(ecs *ecs.ECS) (*arena.Arena, error) {
	a, err := arena.Load(assets.Maps, "maps/arena.tmx")
	if err != nil {
		return nil, err
	}

	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: a})
	return a, nil
}
