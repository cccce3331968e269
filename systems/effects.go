package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
)

// TriggerFlash starts a highlight flash over the dodger sprite in the given
// color. A new flash replaces any one still running.
func TriggerFlash(e *ecs.ECS, c color.RGBA) {
	entry, ok := components.Flash.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Tween = gween.New(1, 0, cfg.Effects.FlashDuration, ease.OutQuad)
	flash.Alpha = 1
	flash.R = float32(c.R) / 255
	flash.G = float32(c.G) / 255
	flash.B = float32(c.B) / 255
}

// TriggerSquash deforms the sprite on launch: a fast stretch followed by a
// slower spring back to rest.
func TriggerSquash(e *ecs.ECS) {
	entry, ok := components.Squash.First(e.World)
	if !ok {
		return
	}
	squash := components.Squash.Get(entry)

	amount := float32(cfg.Effects.SquashAmount)
	in := cfg.Effects.SquashDuration * 0.25
	out := cfg.Effects.SquashDuration - in
	squash.Seq = gween.NewSequence(
		gween.New(0, amount, in, ease.OutQuad),
		gween.New(amount, 0, out, ease.OutBack),
	)
}

// UpdateEffects advances the running flash and squash tweens by one frame.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if entry, ok := components.Flash.First(e.World); ok {
		flash := components.Flash.Get(entry)
		if flash.Tween != nil {
			value, done := flash.Tween.Update(dt)
			flash.Alpha = value
			if done {
				flash.Tween = nil
				flash.Alpha = 0
			}
		}
	}

	if entry, ok := components.Squash.First(e.World); ok {
		squash := components.Squash.Get(entry)
		squash.ScaleX, squash.ScaleY = 1, 1
		if squash.Seq != nil {
			value, _, done := squash.Seq.Update(dt)
			if done {
				squash.Seq = nil
			} else {
				// Stretch along X, compress along Y by the same amount.
				squash.ScaleX = 1 + float64(value)
				squash.ScaleY = 1 - float64(value)
			}
		}
	}
}
