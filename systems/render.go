package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/assets"
	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
)

var dodgerDrawOp = &ebiten.DrawImageOptions{}

// cameraOffset returns the vertical scroll applied to all world-space draws.
func cameraOffset(e *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0
	}
	return components.Camera.Get(cameraEntry).Y
}

// DrawArena renders the floor, interior and boundary walls.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	a := components.Arena.Get(arenaEntry).Arena
	camY := float32(cameraOffset(e))

	screen.Fill(cfg.FloorColor)

	// Interior a shade lighter than the border band around it.
	in := a.Interior
	vector.DrawFilledRect(screen,
		float32(in.X), float32(in.Y)-camY,
		float32(in.W), float32(in.H),
		cfg.InteriorColor, false)

	for _, w := range a.Walls {
		vector.DrawFilledRect(screen,
			float32(w.X), float32(w.Y)-camY,
			float32(w.W), float32(w.H),
			cfg.WallColor, false)
	}
}

// DrawDodger renders the blob sprite with the current squash deformation,
// the resting fade, and any running highlight flash.
func DrawDodger(e *ecs.ECS, screen *ebiten.Image) {
	dodgerEntry, ok := components.Dodger.First(e.World)
	if !ok {
		return
	}
	d := components.Dodger.Get(dodgerEntry)
	camY := cameraOffset(e)

	w := cfg.Dodger.Width
	h := cfg.Dodger.Height
	x := d.OffsetX + d.X
	y := d.OffsetY + d.Y - camY

	scaleX, scaleY := 1.0, 1.0
	if dodgerEntry.HasComponent(components.Squash) {
		squash := components.Squash.Get(dodgerEntry)
		if squash.ScaleX != 0 {
			scaleX, scaleY = squash.ScaleX, squash.ScaleY
		}
	}

	sprite := assets.DodgerSprite(int(w), int(h), cfg.Dodger.BodyColor)

	dodgerDrawOp.GeoM.Reset()
	dodgerDrawOp.ColorScale.Reset()
	// Scale about the sprite center so the squash does not shift it.
	dodgerDrawOp.GeoM.Translate(-w/2, -h/2)
	dodgerDrawOp.GeoM.Scale(scaleX, scaleY)
	dodgerDrawOp.GeoM.Translate(x+w/2, y+h/2)

	if !d.Moving {
		dodgerDrawOp.ColorScale.ScaleAlpha(cfg.Dodger.RestingAlpha)
	}
	screen.DrawImage(sprite, dodgerDrawOp)

	if dodgerEntry.HasComponent(components.Flash) {
		flash := components.Flash.Get(dodgerEntry)
		if flash.Alpha > 0 {
			dodgerDrawOp.ColorScale.Reset()
			dodgerDrawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
			dodgerDrawOp.ColorScale.ScaleAlpha(flash.Alpha * 0.6)
			screen.DrawImage(sprite, dodgerDrawOp)
		}
	}
}
