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
)

// DrawHUD renders the session stats and the dodger's status line in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	dodgerEntry, ok := components.Dodger.First(e.World)
	if !ok {
		return
	}
	d := components.Dodger.Get(dodgerEntry)

	margin := float32(cfg.HUD.Margin)
	line := int(cfg.HUD.LineHeight)
	face := fonts.Regular.Get()
	small := fonts.Small.Get()

	vector.DrawFilledRect(screen, margin-4, margin-4, 150, float32(line*4+8),
		cfg.BlackOverlay, false)

	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + line - 4

	text.Draw(screen, fmt.Sprintf("Attempts: %d", d.Attempts), face, x, y, cfg.HUD.TextColor)
	y += line
	text.Draw(screen, fmt.Sprintf("Catches:  %d", d.Catches), face, x, y, cfg.HUD.TextColor)
	y += line
	text.Draw(screen, fmt.Sprintf("Evading:  %.1fs", d.EvadeTime), face, x, y, cfg.HUD.TextColor)
	y += line
	text.Draw(screen, statusLine(d), face, x, y, statusColor(d))

	hint := "click/space: catch   R: reset   wheel: scroll   F1: debug   esc: menu"
	text.Draw(screen, hint, small, x, cfg.C.Height-6, cfg.HUD.DimColor)
}

func statusLine(d *components.DodgerData) string {
	switch {
	case d.Ctl.Immune():
		return "status: immune"
	case d.Hit:
		return "status: hit!"
	case d.Moving:
		return "status: evading"
	default:
		return "status: resting"
	}
}

func statusColor(d *components.DodgerData) color.Color {
	switch {
	case d.Ctl.Immune():
		return cfg.Cyan
	case d.Hit:
		return cfg.Red
	case d.Moving:
		return cfg.Green
	default:
		return cfg.HUD.DimColor
	}
}
