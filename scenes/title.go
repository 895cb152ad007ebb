package scenes

import (
	"sync"

	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/systems"
	"github.com/automoto/bugcrossing/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene shows the instructions and waits for Start or Enter.
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
	shouldStart  bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	ts.titleUI.Update()

	if ts.shouldStart {
		ts.sceneChanger.ChangeScene(NewCrossingScene(ts.sceneChanger))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Title.BackgroundColor)

	if ts.ecs == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateMenuSelect(func() { ts.shouldStart = true }))
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.titleUI = ui.NewTitleUI(func() { ts.shouldStart = true })
}
