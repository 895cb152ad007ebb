package config

import (
	"image/color"

	"github.com/automoto/bugcrossing/core"
)

// Config holds general window configuration
type Config struct {
	Width      int
	Height     int
	Scale      float64 // window scale factor
	Fullscreen bool
	TPS        int // simulation ticks per second
	Title      string
}

// StageConfig describes the terrain grid drawn behind the entities
type StageConfig struct {
	Columns    int
	Rows       int
	TileWidth  int // horizontal step between tiles
	TileHeight int // vertical step between rows
	// Tiles are taller than a row; the lower part of each image overlaps the
	// row below, matching the sprite art.
	TileImageHeight int
	LayerName       string // tile layer read from the embedded map
}

// HUDConfig contains the lives strip configuration values
type HUDConfig struct {
	Height          int // strip below the stage
	BackgroundColor color.RGBA
	LabelColor      color.RGBA
	Label           string
	HeartSize       float64
	HeartGap        float64
	PaddingX        float64
	PulseSeconds    float64 // hearts swell for this long after the count changes
	PulseScale      float64 // peak heart scale of the pulse
}

// MessageConfig contains message box configuration
type MessageConfig struct {
	BoxPadding  float64    // Padding inside message box
	BoxColor    color.RGBA // Semi-transparent background color
	TextColor   color.RGBA
	TopMargin   float64 // Distance from top of screen
	FadeSeconds float32 // fade-in length for a new message
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	HintY        float64
	Hint         string
	ButtonY      int
}

// TitleConfig contains the title screen configuration values
type TitleConfig struct {
	BackgroundColor color.RGBA
	HeadingColor    color.RGBA
	TextColor       color.RGBA
	Heading         string
	Instructions    []string
	ButtonLabel     string
}

// ButtonConfig contains ebitenui button colors shared by every screen
type ButtonConfig struct {
	Idle     color.RGBA
	Hover    color.RGBA
	Pressed  color.RGBA
	Text     color.RGBA
	Width    int
	Height   int
	FontSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu       bool // Skip title and go directly to the crossing
	Hitboxes       bool // Draw collision boxes
	HitboxColor    color.RGBA
	NeighbourColor color.RGBA // boxes sharing a broad-phase cell with the player
}

// Global configuration instances
var C *Config
var Stage StageConfig
var HUD HUDConfig
var Message MessageConfig
var GameOver GameOverConfig
var Title TitleConfig
var Button ButtonConfig
var Debug DebugConfig

// Rules is the fixed gameplay tuning handed to core.NewState.
var Rules core.Rules

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Navy         = color.RGBA{R: 20, G: 30, B: 60, A: 255}
)

func init() {
	Rules = core.DefaultRules()

	Stage = StageConfig{
		Columns:         5,
		Rows:            6,
		TileWidth:       101,
		TileHeight:      83,
		TileImageHeight: 171,
		LayerName:       "stage",
	}

	HUD = HUDConfig{
		Height:          60,
		BackgroundColor: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		LabelColor:      White,
		Label:           "Lives:",
		HeartSize:       28,
		HeartGap:        8,
		PaddingX:        12,
		PulseSeconds:    0.4,
		PulseScale:      1.3,
	}

	C = &Config{
		Width:  Stage.Columns * Stage.TileWidth,
		Height: (Stage.Rows-1)*Stage.TileHeight + Stage.TileImageHeight + HUD.Height,
		Scale:  1,
		TPS:    60,
		Title:  "Bug Crossing",
	}

	Message = MessageConfig{
		BoxPadding:  10,
		BoxColor:    color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:   Yellow,
		TopMargin:   60,
		FadeSeconds: 0.25,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		HintColor:    White,
		TitleY:       240,
		HintY:        290,
		Hint:         "Press R to restart",
		ButtonY:      340,
	}

	Title = TitleConfig{
		BackgroundColor: Navy,
		HeadingColor:    Yellow,
		TextColor:       White,
		Heading:         "Bug Crossing",
		Instructions: []string{
			"Use the arrow keys or WASD to move.",
			"Reach the water without touching a bug.",
			"Each bug you touch costs a life.",
			"You have 3 lives.",
		},
		ButtonLabel: "Start",
	}

	Button = ButtonConfig{
		Idle:     DarkBlue,
		Hover:    LightBlue,
		Pressed:  color.RGBA{R: 40, G: 70, B: 120, A: 255},
		Text:     White,
		Width:    180,
		Height:   44,
		FontSize: 22,
	}

	Debug = DebugConfig{
		HitboxColor:    color.RGBA{R: 0, G: 255, B: 0, A: 90},
		NeighbourColor: color.RGBA{R: 255, G: 140, B: 0, A: 140},
	}
}
