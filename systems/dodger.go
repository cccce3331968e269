package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
	"github.com/dodgebox/dodgebox/dodge"
	"github.com/dodgebox/dodgebox/pointer"
)

// UpdateDodger is the bridge between the host frame loop and the dodge
// core: it feeds pointer samples and discontinuities into the controller,
// forwards catch attempts, advances the tick scheduler, and mirrors the
// resulting position into the collision space.
func UpdateDodger(e *ecs.ECS) {
	dodgerEntry, ok := components.Dodger.First(e.World)
	if !ok {
		return
	}
	d := components.Dodger.Get(dodgerEntry)
	input := getOrCreateInput(e)
	now := Now(e)

	cameraY := 0.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		cameraY = components.Camera.Get(cameraEntry).Y
	}

	// Pointer position in arena coordinates. Wheel scrolling shifts it
	// even while the cursor itself is still, which is exactly the scroll
	// event the tracker expects.
	wx := float64(input.CursorX)
	wy := float64(input.CursorY) + cameraY

	if w, h := ebiten.WindowSize(); w != input.LastWinW || h != input.LastWinH {
		if input.LastWinW != 0 || input.LastWinH != 0 {
			d.Ctl.Discontinue(pointer.Sample{Time: now})
		}
		input.LastWinW, input.LastWinH = w, h
	}

	if input.CursorInside {
		// Duplicate coordinates are dropped by the tracker, so feeding
		// every frame is equivalent to move events only.
		d.Ctl.Observe(pointer.Sample{X: wx, Y: wy, Time: now})
	} else if _, _, known := d.Ctl.PointerPosition(); known {
		d.Ctl.Discontinue(pointer.Sample{Time: now})
	}

	handleCatchAttempts(e, d, input, wx, wy)

	if GetAction(input, cfg.ActionReset).JustPressed {
		d.Ctl.Halt()
		if err := d.Ctl.Place(d.SpawnX, d.SpawnY); err == nil {
			d.Attempts, d.Catches, d.EvadeTime = 0, 0, 0
		}
	}

	// Drive the controller's 10ms tick loop up to the current frame time.
	d.Sched.Advance(now)

	if d.Moving {
		d.EvadeTime += 1.0 / float64(ebiten.TPS())
	}

	detectBounces(e, d)

	// Mirror into the collision space for the debug overlay.
	if dodgerEntry.HasComponent(components.Object) {
		obj := components.Object.Get(dodgerEntry)
		obj.X = d.OffsetX + d.X
		obj.Y = d.OffsetY + d.Y
		obj.Update()
	}
}

// handleCatchAttempts maps clicks and the catch key onto activations. A
// click only activates when it lands inside the padded hit box; anything
// else is a missed attempt.
func handleCatchAttempts(e *ecs.ECS, d *components.DodgerData, input *components.InputData, wx, wy float64) {
	clicked := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !input.MouseWasDown
	input.MouseWasDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	keyCatch := GetAction(input, cfg.ActionCatch).JustPressed

	if !clicked && !keyCatch {
		return
	}
	if !input.CursorInside {
		return
	}

	d.Attempts++

	// Interior-frame pointer position for the hit-box test.
	ix := wx - d.OffsetX
	iy := wy - d.OffsetY
	x, y := d.Ctl.Position()
	pad := cfg.Dodger.Padding
	inside := ix >= x-pad && ix <= x+cfg.Dodger.Width+pad &&
		iy >= y-pad && iy <= y+cfg.Dodger.Height+pad

	if inside {
		d.Catches++
		d.EvadeTime = 0
		d.Ctl.Activate(ix, iy)
	}
}

// detectBounces watches for velocity sign flips between frames, which only
// a wall rebound produces, and raises the bounce blip.
func detectBounces(e *ecs.ECS, d *components.DodgerData) {
	vx, vy := d.Ctl.Velocity()
	if (vx != 0 && d.PrevVX != 0 && (vx > 0) != (d.PrevVX > 0)) ||
		(vy != 0 && d.PrevVY != 0 && (vy > 0) != (d.PrevVY > 0)) {
		QueueSFX(e, cfg.SoundBounce)
	}
	d.PrevVX, d.PrevVY = vx, vy
}

// NewDodgeListener wires controller signals back into the ECS data the
// render, effects and audio systems read.
func NewDodgeListener(e *ecs.ECS, d *components.DodgerData) dodge.Listener {
	return dodge.Listener{
		Moved: func(x, y float64) {
			d.X, d.Y = x, y
		},
		MotionChanged: func(moving bool) {
			d.Moving = moving
		},
		HitChanged: func(hit bool) {
			d.Hit = hit
			if hit {
				QueueSFX(e, cfg.SoundHit)
				TriggerFlash(e, cfg.Dodger.HitColor)
			}
		},
		Activated: func() {
			QueueSFX(e, cfg.SoundCatch)
			TriggerFlash(e, cfg.Dodger.ImmuneColor)
			TriggerSquash(e)
		},
	}
}
