package systems

import (
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/dodgebox/dodgebox/config"
)

// UpdateSettings handles the in-session toggles.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Mute = !settings.Mute
	}
}
