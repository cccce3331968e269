package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/dodgebox/dodgebox/config"
	"github.com/dodgebox/dodgebox/systems"
	"github.com/dodgebox/dodgebox/systems/factory"
)

// ArenaScene runs the dodge game itself.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewArenaScene creates a new arena scene
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.ActionJustPressed(as.ecs, cfg.ActionBack) {
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateDodger)
	e.AddSystem(systems.UpdateEffects)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawDodger)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = e

	a, err := factory.CreateArena(e)
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}

	factory.CreateSpace(e, int(a.Width), int(a.Height), 16, 16)
	factory.CreateCamera(e, a)
	factory.CreateWalls(e, a)

	if _, err := factory.CreateDodger(e, a); err != nil {
		panic("failed to create dodger: " + err.Error())
	}
}
