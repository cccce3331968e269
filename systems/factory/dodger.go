package factory

import (
	"math/rand"
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/archetypes"
	"github.com/dodgebox/dodgebox/arena"
	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
	"github.com/dodgebox/dodgebox/dodge"
	"github.com/dodgebox/dodgebox/pointer"
	"github.com/dodgebox/dodgebox/systems"
	"github.com/dodgebox/dodgebox/tags"
)

// CreateDodger builds the dodger entity and its controller. The motion range
// is the arena interior minus the dodger footprint; the tracker frame uses
// the border widths declared by the map, so a malformed map fails here with
// a pointer.FormatError.
func CreateDodger(e *ecs.ECS, a *arena.Arena) (*donburi.Entry, error) {
	offsetX, err := pointer.ParsePixels(a.BorderLeft)
	if err != nil {
		return nil, err
	}
	offsetY, err := pointer.ParsePixels(a.BorderTop)
	if err != nil {
		return nil, err
	}

	dodger := archetypes.Dodger.Spawn(e)
	d := components.Dodger.Get(dodger)

	dcfg := dodge.Config{
		Width:  cfg.Dodger.Width,
		Height: cfg.Dodger.Height,
		UpperX: a.Interior.W - cfg.Dodger.Width,
		UpperY: a.Interior.H - cfg.Dodger.Height,

		Decel:       cfg.Dodger.Decel,
		HalfRebound: cfg.Dodger.HalfRebound,
		Padding:     cfg.Dodger.Padding,

		MinAxisSpeed:    cfg.Dodger.MinAxisSpeed,
		MinSpeed:        cfg.Dodger.MinSpeed,
		EscapeTime:      cfg.Dodger.EscapeTime,
		ActivationSpeed: cfg.Dodger.ActivationSpeed,
		ImmunityWindow:  cfg.Dodger.ImmunityWindow,
		TickInterval:    cfg.Dodger.TickInterval,
		SampleExpiry:    cfg.Dodger.SampleExpiry,
	}

	frame := pointer.Frame{
		BorderLeft: a.BorderLeft,
		BorderTop:  a.BorderTop,
	}

	sched := dodge.NewFrameScheduler(0)
	clock := func() float64 { return systems.Now(e) }
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctl, err := dodge.NewController(dcfg, frame, sched, clock, rng, systems.NewDodgeListener(e, d))
	if err != nil {
		return nil, err
	}

	d.Ctl = ctl
	d.Sched = sched
	d.OffsetX, d.OffsetY = offsetX, offsetY

	// Spawn centered on the map's spawn point, clamped to the motion range.
	d.SpawnX = clamp(a.SpawnX-offsetX-cfg.Dodger.Width/2, 0, dcfg.UpperX)
	d.SpawnY = clamp(a.SpawnY-offsetY-cfg.Dodger.Height/2, 0, dcfg.UpperY)
	if err := ctl.Place(d.SpawnX, d.SpawnY); err != nil {
		return nil, err
	}

	obj := resolv.NewObject(d.OffsetX+d.X, d.OffsetY+d.Y,
		cfg.Dodger.Width, cfg.Dodger.Height, tags.ResolvDodger)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Dodger.Width, cfg.Dodger.Height))
	obj.Data = dodger
	components.Object.SetValue(dodger, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return dodger, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
