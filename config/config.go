package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default = ecs.LayerDefault

// Config contains global game configuration values
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains player movement and collider dimensions
type PlayerConfig struct {
	// Movement
	Acceleration float64
	MaxSpeed     float64
	Friction     float64

	// Collider dimensions and offset from the entity origin
	CollisionWidth  float64
	CollisionHeight float64
	CollisionOffX   float64
	CollisionOffY   float64
}

// CrateConfig contains pushable crate dimensions
type CrateConfig struct {
	Size float64
}

// ProbeConfig contains the roaming circle probe used to exercise
// circle colliders in the demo room
type ProbeConfig struct {
	Radius float64
	Speed  float64
}

// PlatformConfig contains moving platform defaults, used when a layout's
// platform object omits the corresponding property
type PlatformConfig struct {
	Range  float64 // vertical travel in pixels
	Period float32 // seconds for one leg of the travel
}

// OverlayConfig contains debug overlay colors. Mask rectangles are keyed
// by behavior name; unknown behaviors fall back to MaskColor.
type OverlayConfig struct {
	MaskColors map[string]color.RGBA
	MaskColor  color.RGBA // fallback
	HitColor   color.RGBA // any shape whose colliding flag is set
	Collider   color.RGBA
	MouseOver  color.RGBA
	GridColor  color.RGBA
}

var (
	C        *Config
	Player   PlayerConfig
	Crate    CrateConfig
	Probe    ProbeConfig
	Platform PlatformConfig
	Overlay  OverlayConfig
)

// Common colors
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Amber = color.RGBA{R: 255, G: 180, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "burrow",
	}

	Player = PlayerConfig{
		Acceleration:    0.6,
		MaxSpeed:        3.0,
		Friction:        0.4,
		CollisionWidth:  12,
		CollisionHeight: 14,
		CollisionOffX:   2,
		CollisionOffY:   2,
	}

	Crate = CrateConfig{
		Size: 16,
	}

	Probe = ProbeConfig{
		Radius: 6,
		Speed:  1.2,
	}

	Platform = PlatformConfig{
		Range:  64,
		Period: 2,
	}

	Overlay = OverlayConfig{
		MaskColors: map[string]color.RGBA{
			"solid":  Grey,
			"hazard": Red,
			"sensor": Green,
		},
		MaskColor: Grey,
		HitColor:  Amber,
		Collider:  Blue,
		MouseOver: Cyan,
		GridColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
	}
}
