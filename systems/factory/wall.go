package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/archetypes"
	"github.com/dodgebox/dodgebox/arena"
	"github.com/dodgebox/dodgebox/components"
	"github.com/dodgebox/dodgebox/tags"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateWalls builds one wall entity per boundary rectangle of the arena.
func CreateWalls(ecs *ecs.ECS, a *arena.Arena) {
	for _, w := range a.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
}
