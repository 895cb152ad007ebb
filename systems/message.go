package systems

import (
	"image/color"

	"github.com/automoto/bugcrossing/components"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// UpdateMessage restarts the fade whenever the session writes a new message.
// Must run AFTER UpdateSession.
func UpdateMessage(ecs *ecs.ECS) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	fade := getOrCreateMessageFade(ecs)

	msg, active := session.State.HUD.Active()
	if !active {
		fade.Alpha = 0
		return
	}
	if msg.Seq != fade.Seq {
		fade.Seq = msg.Seq
		fade.Tween = gween.New(0, 1, cfg.Message.FadeSeconds, ease.OutQuad)
	}
	if fade.Tween == nil {
		fade.Alpha = 1
		return
	}
	alpha, finished := fade.Tween.Update(float32(1 / float64(ebiten.TPS())))
	fade.Alpha = alpha
	if finished {
		fade.Tween = nil
		fade.Alpha = 1
	}
}

// DrawMessage renders the visible message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	messageText := session.State.Message()
	if messageText == "" {
		return
	}
	fade := getOrCreateMessageFade(ecs)

	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.Bold.Get()
	}

	bounds := text.BoundString(messageFontFace, messageText) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, fadeColor(cfg.Message.BoxColor, fade.Alpha), false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, messageText, messageFontFace, textX, textY, fadeColor(cfg.Message.TextColor, fade.Alpha)) //nolint:staticcheck // TODO: migrate to text/v2
}

// fadeColor scales c by alpha, keeping it premultiplied.
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// getOrCreateMessageFade returns the singleton MessageFade component
func getOrCreateMessageFade(ecs *ecs.ECS) *components.MessageFadeData {
	entry, ok := components.MessageFade.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageFade))
		components.MessageFade.SetValue(entry, components.MessageFadeData{})
	}
	return components.MessageFade.Get(entry)
}
