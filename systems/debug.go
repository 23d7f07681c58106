package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
)

// DrawDebug renders the collision overlay: compiled mask rectangles
// colored by behavior and entity colliders colored by their frame
// flags. There is no camera; rooms are sized to the window.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Overlay {
		return
	}

	room := activeRoom(ecs.World)
	if settings.ShowMasks && room != nil && room.Masks != nil {
		for _, code := range room.Masks.Codes() {
			c := cfg.Overlay.MaskColor
			if room.Registry != nil {
				if name, ok := room.Registry.Name(code); ok {
					if mc, ok := cfg.Overlay.MaskColors[name]; ok {
						c = mc
					}
				}
			}
			for _, r := range room.Masks.Masks(code) {
				rectColor := c
				if r.Colliding {
					rectColor = cfg.Overlay.HitColor
				}
				strokeRect(screen, r, rectColor)
			}
		}
	}

	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		shape := components.Collider.Get(e).Shape
		if shape == nil {
			return
		}
		c := cfg.Overlay.Collider
		if shape.MouseOver {
			c = cfg.Overlay.MouseOver
		}
		if shape.Colliding {
			c = cfg.Overlay.HitColor
		}
		switch shape.Kind {
		case collision.KindRectangle:
			strokeRect(screen, shape, c)
		case collision.KindCircle:
			vector.StrokeCircle(screen, float32(shape.X), float32(shape.Y), float32(shape.Radius), 1, c, false)
		}
	})
}

// strokeRect draws a 1px rectangle outline.
func strokeRect(screen *ebiten.Image, s *collision.Shape, c color.RGBA) {
	x, y := float32(s.X), float32(s.Y)
	w, h := float32(s.W), float32(s.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
