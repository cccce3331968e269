package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/dodgebox/dodgebox/config"
	"github.com/dodgebox/dodgebox/systems"
	"github.com/dodgebox/dodgebox/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldPlay   bool
	playQueued   bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.menuUI.Update()

	// The select blip is queued one frame ahead so the audio system gets a
	// chance to play it before the scene goes away.
	if ms.playQueued {
		ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger))
		return
	}
	if ms.shouldPlay || systems.ActionJustPressed(ms.ecs, cfg.ActionMenuSelect) {
		systems.QueueSFX(ms.ecs, cfg.SoundMenuSelect)
		ms.playQueued = true
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)

	ms.menuUI = ui.NewMenuUI(
		func() { ms.shouldPlay = true },
		func() { os.Exit(0) },
	)
}
