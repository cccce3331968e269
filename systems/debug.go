package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
	"github.com/dodgebox/dodgebox/fonts"
	"github.com/dodgebox/dodgebox/tags"
)

// UpdateDebug toggles the overlay on the debug action.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.DebugOverlay = !settings.DebugOverlay
	}
}

// DrawDebug renders the collision space outlines, the padded hit box, the
// velocity vectors and the tracker readout.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.DebugOverlay {
		return
	}

	camY := float32(cameraOffset(e))

	// Collision space outlines.
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Cyan
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvDodger) {
				c = cfg.Green
			}
			strokeRect(screen, float32(obj.X), float32(obj.Y)-camY,
				float32(obj.W), float32(obj.H), c)
		}
	}

	dodgerEntry, ok := components.Dodger.First(e.World)
	if !ok {
		return
	}
	d := components.Dodger.Get(dodgerEntry)
	now := Now(e)

	// Padded hit box, arena coordinates.
	pad := float32(cfg.Dodger.Padding)
	hx := float32(d.OffsetX+d.X) - pad
	hy := float32(d.OffsetY+d.Y) - camY - pad
	strokeRect(screen, hx, hy,
		float32(cfg.Dodger.Width)+2*pad, float32(cfg.Dodger.Height)+2*pad, cfg.Magenta)

	// Velocity vectors, scaled down to stay readable.
	const vecScale = 0.1
	cx := float32(d.OffsetX + d.X + cfg.Dodger.Width/2)
	cy := float32(d.OffsetY+d.Y+cfg.Dodger.Height/2) - camY
	vx, vy := d.Ctl.Velocity()
	vector.StrokeLine(screen, cx, cy,
		cx+float32(vx)*vecScale, cy+float32(vy)*vecScale, 1, cfg.Green, false)

	if px, py, known := d.Ctl.PointerPosition(); known {
		sx := float32(px + d.OffsetX)
		sy := float32(py+d.OffsetY) - camY
		tvx, tvy := d.Ctl.PointerVelocity(now)
		vector.StrokeLine(screen, sx, sy,
			sx+float32(tvx)*vecScale, sy+float32(tvy)*vecScale, 1, cfg.Cyan, false)
	}

	drawDebugReadout(screen, d, now)
}

func drawDebugReadout(screen *ebiten.Image, d *components.DodgerData, now float64) {
	face := fonts.Small.Get()
	vx, vy := d.Ctl.Velocity()
	tvx, tvy := d.Ctl.PointerVelocity(now)
	px, py, known := d.Ctl.PointerPosition()

	lines := []string{
		fmt.Sprintf("pos  %7.2f %7.2f", d.X, d.Y),
		fmt.Sprintf("vel  %7.1f %7.1f", vx, vy),
		fmt.Sprintf("ptr  known=%v %7.2f %7.2f", known, px, py),
		fmt.Sprintf("pvel %7.1f %7.1f", tvx, tvy),
		fmt.Sprintf("hit=%v immune=%v moving=%v", d.Ctl.Hit(), d.Ctl.Immune(), d.Ctl.Moving()),
	}

	x := cfg.C.Width - 200
	y := 16
	for _, l := range lines {
		text.Draw(screen, l, face, x, y, cfg.Cyan)
		y += 12
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x, y, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y, 1, h, c, false)
	vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false)
}
