package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DodgerConfig contains the simulation tuning for the dodger blob. Speeds
// are px/s, times are seconds; the dodge core runs on injected wall time.
type DodgerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Motion
	Decel       float64 // deceleration magnitude
	HalfRebound float64 // wall rebound reference speed

	// Hit response
	Padding      float64 // hit-box inflation around the sprite
	MinAxisSpeed float64 // per-axis floor after a hit
	MinSpeed     float64 // combined floor after a hit
	EscapeTime   float64 // budget to clear the half-depth from a dead stop

	// Catch attempts
	ActivationSpeed float64
	ImmunityWindow  float64

	// Scheduling
	TickInterval float64 // controller re-simulation period
	SampleExpiry float64 // pointer sample-validity window

	// Visual
	BodyColor    color.RGBA
	HitColor     color.RGBA
	ImmuneColor  color.RGBA
	RestingAlpha float32 // body alpha while idle
}

// CameraConfig contains camera/scroll configuration
type CameraConfig struct {
	WheelSpeed float64 // arena px scrolled per wheel unit
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	DimColor   color.RGBA
}

// MenuConfig contains menu scene values
type MenuConfig struct {
	Title           string
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	TextColor       color.RGBA
}

// EffectsConfig contains visual effect tuning
type EffectsConfig struct {
	FlashDuration  float32 // seconds of highlight flash after a hit
	SquashAmount   float64 // scale deformation on launch
	SquashDuration float32 // seconds to tween back to normal
}

// AudioConfig contains audio synthesis values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the arena
	Overlay  bool // Start with the debug overlay enabled
}

// Global configuration instances
var C *Config
var Dodger DodgerConfig
var Camera CameraConfig
var HUD HUDConfig
var Menu MenuConfig
var Effects EffectsConfig
var Audio AudioConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey          = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Red           = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green         = color.RGBA{R: 80, G: 220, B: 100, A: 255}
	Cyan          = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta       = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	WallColor     = color.RGBA{R: 70, G: 78, B: 96, A: 255}
	FloorColor    = color.RGBA{R: 24, G: 26, B: 34, A: 255}
	InteriorColor = color.RGBA{R: 32, G: 35, B: 46, A: 255}
	BlackOverlay  = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Dodger = DodgerConfig{
		Width:  28,
		Height: 28,

		Decel:       300.0,
		HalfRebound: 1200.0,

		Padding:      6.0,
		MinAxisSpeed: 30.0,
		MinSpeed:     150.0,
		EscapeTime:   0.25,

		ActivationSpeed: 900.0,
		ImmunityWindow:  0.6,

		TickInterval: 0.01,
		SampleExpiry: 0.3,

		BodyColor:    color.RGBA{R: 255, G: 196, B: 0, A: 255},
		HitColor:     color.RGBA{R: 255, G: 80, B: 80, A: 255},
		ImmuneColor:  color.RGBA{R: 120, G: 200, B: 255, A: 255},
		RestingAlpha: 0.7,
	}

	Camera = CameraConfig{
		WheelSpeed: 24.0,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 14,
		TextColor:  White,
		DimColor:   Grey,
	}

	Menu = MenuConfig{
		Title:           "DODGEBOX",
		BackgroundColor: color.RGBA{R: 16, G: 18, B: 26, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 34, B: 46, A: 255},
		ButtonIdle:      color.RGBA{R: 50, G: 58, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 70, G: 82, B: 112, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 46, B: 64, A: 255},
		TextColor:       White,
	}

	Effects = EffectsConfig{
		FlashDuration:  0.25,
		SquashAmount:   0.35,
		SquashDuration: 0.3,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.4,
	}

	Debug = DebugConfig{}
}
