package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/tags"
)

// UpdatePhysics moves the player and probes, clamping against solid
// tile masks one axis at a time. Axis separation means a diagonal move
// into a corner resolves into a slide along the wall instead of a stop.
func UpdatePhysics(ecs *ecs.ECS) {
	room := activeRoom(ecs.World)
	var masks *collision.MaskSet
	solid := 0
	if room != nil {
		masks = room.Masks
		if room.Registry != nil {
			solid, _ = room.Registry.Code(tags.BehaviorSolid)
		}
	}

	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		phys := components.Physics.Get(e)

		phys.SpeedX = step(phys.SpeedX, input.AxisX)
		phys.SpeedY = step(phys.SpeedY, input.AxisY)

		pos := components.Position.Get(e)
		col := components.Collider.Get(e).Collider

		if blocked := moveRectX(pos, col, phys.SpeedX, solid, masks); blocked {
			phys.SpeedX = 0
		}
		pushCrates(ecs, e, phys.SpeedX, solid, masks)
		if blocked := moveRectY(pos, col, phys.SpeedY, solid, masks); blocked {
			phys.SpeedY = 0
		}
	})

	tags.Probe.Each(ecs.World, func(e *donburi.Entry) {
		phys := components.Physics.Get(e)
		pos := components.Position.Get(e)
		col := components.Collider.Get(e).Collider

		prevX := pos.X
		pos.X += phys.SpeedX
		col.SetPosition(pos.X, pos.Y)
		if len(collision.TestAgainstBehavior(col, solid, masks)) > 0 {
			pos.X = prevX
			col.SetPosition(pos.X, pos.Y)
			phys.SpeedX = -phys.SpeedX
		}
	})
}

// step accelerates toward the input axis, applies friction when the
// axis is released, and clamps to the configured max speed.
func step(speed, axis float64) float64 {
	if axis != 0 {
		speed += axis * cfg.Player.Acceleration
	} else if speed > cfg.Player.Friction {
		speed -= cfg.Player.Friction
	} else if speed < -cfg.Player.Friction {
		speed += cfg.Player.Friction
	} else {
		speed = 0
	}
	return math.Max(-cfg.Player.MaxSpeed, math.Min(cfg.Player.MaxSpeed, speed))
}

// moveRectX applies a horizontal displacement to a rectangle collider
// and clamps it flush against the nearest solid mask edge it crossed.
// Flush contact does not count as overlap, so a clamped entity can keep
// sliding along the wall on the other axis.
func moveRectX(pos *components.PositionData, col *collision.Collider, dx float64, solid int, masks *collision.MaskSet) bool {
	pos.X += dx
	col.SetPosition(pos.X, pos.Y)
	hits := collision.TestAgainstBehavior(col, solid, masks)
	if len(hits) == 0 {
		return false
	}
	switch {
	case dx > 0:
		edge := hits[0].Left
		for _, h := range hits[1:] {
			edge = math.Min(edge, h.Left)
		}
		pos.X = edge - col.Shape.W - col.OffsetX
	case dx < 0:
		edge := hits[0].Right
		for _, h := range hits[1:] {
			edge = math.Max(edge, h.Right)
		}
		pos.X = edge - col.OffsetX
	default:
		// Overlapping while stationary (bad spawn); leave it to the
		// hazard/respawn path rather than guess a push direction.
		return false
	}
	col.SetPosition(pos.X, pos.Y)
	return true
}

func moveRectY(pos *components.PositionData, col *collision.Collider, dy float64, solid int, masks *collision.MaskSet) bool {
	pos.Y += dy
	col.SetPosition(pos.X, pos.Y)
	hits := collision.TestAgainstBehavior(col, solid, masks)
	if len(hits) == 0 {
		return false
	}
	switch {
	case dy > 0:
		edge := hits[0].Top
		for _, h := range hits[1:] {
			edge = math.Min(edge, h.Top)
		}
		pos.Y = edge - col.Shape.H - col.OffsetY
	case dy < 0:
		edge := hits[0].Bottom
		for _, h := range hits[1:] {
			edge = math.Max(edge, h.Bottom)
		}
		pos.Y = edge - col.OffsetY
	default:
		return false
	}
	col.SetPosition(pos.X, pos.Y)
	return true
}

// pushCrates resolves player/crate overlap after the player's X move by
// shoving the crate along the same direction, then re-clamping the
// crate against solids. A crate pinned against a wall pushes the player
// back out instead.
func pushCrates(ecs *ecs.ECS, player *donburi.Entry, dx float64, solid int, masks *collision.MaskSet) {
	if dx == 0 {
		return
	}
	pPos := components.Position.Get(player)
	pCol := components.Collider.Get(player).Collider

	tags.Crate.Each(ecs.World, func(e *donburi.Entry) {
		cPos := components.Position.Get(e)
		cCol := components.Collider.Get(e).Collider
		if !collision.Overlaps(pCol.Shape, cCol.Shape) {
			return
		}
		if dx > 0 {
			cPos.X = pCol.Shape.Right() - cCol.OffsetX
		} else {
			cPos.X = pCol.Shape.X - cCol.Shape.W - cCol.OffsetX
		}
		cCol.SetPosition(cPos.X, cPos.Y)

		hits := collision.TestAgainstBehavior(cCol, solid, masks)
		if len(hits) == 0 {
			return
		}

		// Wall behind the crate: clamp the crate flush against it, then
		// the player flush against the crate.
		if dx > 0 {
			edge := hits[0].Left
			for _, h := range hits[1:] {
				edge = math.Min(edge, h.Left)
			}
			cPos.X = edge - cCol.Shape.W - cCol.OffsetX
			cCol.SetPosition(cPos.X, cPos.Y)
			pPos.X = cCol.Shape.X - pCol.Shape.W - pCol.OffsetX
		} else {
			edge := hits[0].Right
			for _, h := range hits[1:] {
				edge = math.Max(edge, h.Right)
			}
			cPos.X = edge - cCol.OffsetX
			cCol.SetPosition(cPos.X, cPos.Y)
			pPos.X = cCol.Shape.Right() - pCol.OffsetX
		}
		pCol.SetPosition(pPos.X, pPos.Y)
	})
}
