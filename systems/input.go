package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/archetypes"
	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run before every system that reads actions or the cursor.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	// Raw cursor state. Coordinates outside the logical screen mean the
	// pointer has left the window.
	x, y := ebiten.CursorPosition()
	input.CursorX, input.CursorY = x, y
	input.CursorInside = x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height

	_, wy := ebiten.Wheel()
	input.WheelY = wy
}

// GetAction returns the temporal state of an action from input data
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	current := input.Current[action]
	previous := input.Previous[action]
	return components.ActionState{
		Pressed:      current,
		JustPressed:  current && !previous,
		JustReleased: !current && previous,
	}
}

// ActionJustPressed reports a rising edge on the action this frame.
func ActionJustPressed(e *ecs.ECS, action cfg.ActionID) bool {
	return GetAction(getOrCreateInput(e), action).JustPressed
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.Create(cfg.Default, components.Input))
	}
	return components.Input.Get(entry)
}

// GetOrCreateSettings returns the session settings singleton.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.Create(cfg.Default, components.Settings))
		components.Settings.Get(entry).DebugOverlay = cfg.Debug.Overlay
	}
	return components.Settings.Get(entry)
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.Create(cfg.Default, components.Audio))
	}
	return components.Audio.Get(entry)
}

func clockEntry(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
	}
	return components.Clock.Get(entry)
}

// UpdateClock advances the scene's injected simulation time by one frame.
func UpdateClock(e *ecs.ECS) {
	clock := clockEntry(e)
	clock.Now += 1.0 / float64(ebiten.TPS())
}

// Now returns the scene clock reading for this frame.
func Now(e *ecs.ECS) float64 {
	return clockEntry(e).Now
}
