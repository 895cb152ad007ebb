package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/bugcrossing/assets"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/core"
	"github.com/automoto/bugcrossing/systems"
	"github.com/automoto/bugcrossing/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CrossingScene runs one session from spawn to game over.
type CrossingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewCrossingScene creates a new crossing scene
func NewCrossingScene(sc SceneChanger) *CrossingScene {
	return &CrossingScene{sceneChanger: sc}
}

func (cs *CrossingScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if systems.IsGameOver(cs.ecs) {
		cs.gameOverUI.Update()
	}
}

func (cs *CrossingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if systems.IsGameOver(cs.ecs) {
		cs.gameOverUI.UI.Draw(screen)
	}
}

func (cs *CrossingScene) configure() {
	// Generate sprites up front so the first frame does not stall (important for WASM)
	assets.PreloadSprites()
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	createCrossingScene := func() interface{} {
		return NewCrossingScene(cs.sceneChanger)
	}

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateMessage)
	ecs.AddSystem(systems.UpdateHitboxes)
	ecs.AddSystem(systems.NewUpdateGameOver(cs.sceneChanger, createCrossingScene))
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(systems.LayerStage, systems.DrawStage)
	ecs.AddRenderer(systems.LayerEntities, systems.DrawEntities)
	ecs.AddRenderer(systems.LayerEntities, systems.DrawDebug)
	ecs.AddRenderer(systems.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(systems.LayerHUD, systems.DrawMessage)
	ecs.AddRenderer(systems.LayerOverlay, systems.DrawGameOver)

	cs.ecs = ecs

	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	systems.CreateSession(cs.ecs, core.NewState(cfg.Rules, src))

	cs.gameOverUI = ui.NewGameOverUI(func() { systems.RequestRestart(cs.ecs) })
}
