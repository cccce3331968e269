package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
)

// UpdateCamera scrolls the viewport across the arena overscan with the
// mouse wheel. The dodger system turns the resulting pointer displacement
// into a continuous tracker sample, so scrolling behaves like a move.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)

	if input.WheelY == 0 {
		return
	}

	camera.Y -= input.WheelY * cfg.Camera.WheelSpeed
	if camera.Y < 0 {
		camera.Y = 0
	}
	if camera.Y > camera.MaxY {
		camera.Y = camera.MaxY
	}
}
