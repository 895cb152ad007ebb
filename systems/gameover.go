package systems

import (
	"github.com/automoto/bugcrossing/components"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// IsGameOver reports whether the session has run out of lives.
func IsGameOver(e *ecs.ECS) bool {
	session, ok := GetSession(e)
	return ok && session.State.GameOver()
}

// RequestRestart asks for a fresh session on the next game over update.
func RequestRestart(e *ecs.ECS) {
	GetOrCreateGameOver(e).RestartRequested = true
}

// NewUpdateGameOver creates an UpdateGameOver system that replaces the scene
// once a restart is requested with the restart key or the overlay button.
func NewUpdateGameOver(sceneChanger SceneChanger, createCrossingScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if !IsGameOver(e) {
			return
		}
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionRestart).JustReleased {
			gameOver.RestartRequested = true
		}
		if gameOver.RestartRequested {
			gameOver.RestartRequested = false
			sceneChanger.ChangeScene(createCrossingScene())
		}
	}
}

// DrawGameOver dims the stage and shows the restart hint.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if !IsGameOver(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(cfg.C.Height - cfg.HUD.Height)

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleBounds := text.BoundString(titleFont, title) //nolint:staticcheck // TODO: migrate to text/v2
	titleX := int((width - float64(titleBounds.Dx())) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor) //nolint:staticcheck // TODO: migrate to text/v2

	hintFont := fonts.Regular.Get()
	hintBounds := text.BoundString(hintFont, cfg.GameOver.Hint) //nolint:staticcheck // TODO: migrate to text/v2
	hintX := int((width - float64(hintBounds.Dx())) / 2)
	text.Draw(screen, cfg.GameOver.Hint, hintFont, hintX, int(cfg.GameOver.HintY), cfg.GameOver.HintColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
