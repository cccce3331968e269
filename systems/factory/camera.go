package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/archetypes"
	"github.com/dodgebox/dodgebox/arena"
	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
)

// CreateCamera spawns the scroll camera. The scrollable range is the arena
// overscan below the logical window.
func CreateCamera(ecs *ecs.ECS, a *arena.Arena) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	maxY := a.Height - float64(cfg.C.Height)
	if maxY < 0 {
		maxY = 0
	}
	components.Camera.SetValue(camera, components.CameraData{MaxY: maxY})
	return camera
}
