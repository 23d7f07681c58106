package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	"github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/leveldata"
	"github.com/mossworks/burrow/systems/factory"
	"github.com/mossworks/burrow/tags"
)

// testRoom is a 5x5 box of solid walls with an open interior, one
// spawn point and one platform.
func testRoom(t *testing.T) *ecs.ECS {
	t.Helper()

	layout := &leveldata.Layout{
		Name: "box",
		Grid: collision.BehaviorGrid{
			{1, 1, 1, 1, 1},
			{1, 0, 0, 0, 1},
			{1, 0, 0, 0, 1},
			{1, 0, 0, 0, 1},
			{1, 1, 1, 1, 1},
		},
		CellW:        16,
		CellH:        16,
		Width:        80,
		Height:       80,
		PlayerSpawns: []leveldata.SpawnPoint{{X: 20, Y: 20}},
		Platforms:    []leveldata.PlatformSpawn{{X: 32, Y: 48, W: 16, H: 4, Range: 16, Period: 1}},
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRoom(e, []*leveldata.Layout{layout}, config.DefaultBehaviors())
	ActivateRoom(e, 0)
	return e
}

func TestActivateRoomSpawnsEverything(t *testing.T) {
	e := testRoom(t)

	room := activeRoom(e.World)
	require.NotNil(t, room)
	require.NotNil(t, room.Masks)
	assert.Equal(t, 0, room.Index)
	assert.Equal(t, "box", room.Layout.Name)

	player := firstPlayer(e.World)
	require.NotNil(t, player)
	pos := components.Position.Get(player)
	assert.Equal(t, 20.0, pos.X)
	assert.Equal(t, 20.0, pos.Y)

	var platforms, crates, probes int
	tags.Platform.Each(e.World, func(*donburi.Entry) { platforms++ })
	tags.Crate.Each(e.World, func(*donburi.Entry) { crates++ })
	tags.Probe.Each(e.World, func(*donburi.Entry) { probes++ })
	assert.Equal(t, 1, platforms)
	assert.Equal(t, 1, crates)
	assert.Equal(t, 1, probes)
}

func TestActivateRoomReplacesRoomEntities(t *testing.T) {
	e := testRoom(t)

	// Re-activating the same room must not accumulate entities.
	ActivateRoom(e, 0)
	ActivateRoom(e, 0)

	var platforms, players int
	tags.Platform.Each(e.World, func(*donburi.Entry) { platforms++ })
	tags.Player.Each(e.World, func(*donburi.Entry) { players++ })
	assert.Equal(t, 1, platforms)
	assert.Equal(t, 1, players)
}

func TestActivateRoomWrapsIndex(t *testing.T) {
	e := testRoom(t)

	ActivateRoom(e, 5)
	assert.Equal(t, 0, activeRoom(e.World).Index)
	ActivateRoom(e, -1)
	assert.Equal(t, 0, activeRoom(e.World).Index)
}

func TestUpdateResetClearsFlags(t *testing.T) {
	e := testRoom(t)
	room := activeRoom(e.World)

	player := firstPlayer(e.World)
	shape := components.Collider.Get(player).Shape
	shape.Colliding = true
	shape.MouseOver = true
	for _, r := range room.Masks.All() {
		r.Colliding = true
	}

	UpdateReset(e)

	assert.False(t, shape.Colliding)
	assert.False(t, shape.MouseOver)
	for _, r := range room.Masks.All() {
		assert.False(t, r.Colliding)
	}
}

func TestMoveRectXClampsAgainstWall(t *testing.T) {
	e := testRoom(t)
	room := activeRoom(e.World)
	solid := room.Registry.MustCode(tags.BehaviorSolid)

	player := firstPlayer(e.World)
	pos := components.Position.Get(player)
	col := components.Collider.Get(player).Collider

	// Enough to push the shape into the right wall at x=64.
	blocked := moveRectX(pos, col, 35, solid, room.Masks)

	require.True(t, blocked)
	assert.Equal(t, 64.0, col.Shape.Right())
	// Flush contact is not an overlap, so the clamped shape is clean.
	assert.Empty(t, collision.TestAgainstBehavior(col, solid, room.Masks))
}

func TestMoveRectYClampsAgainstCeiling(t *testing.T) {
	e := testRoom(t)
	room := activeRoom(e.World)
	solid := room.Registry.MustCode(tags.BehaviorSolid)

	player := firstPlayer(e.World)
	pos := components.Position.Get(player)
	col := components.Collider.Get(player).Collider

	blocked := moveRectY(pos, col, -10, solid, room.Masks)

	require.True(t, blocked)
	assert.Equal(t, 16.0, col.Shape.Y)
}

func TestUpdatePlatformsMovesWithinRange(t *testing.T) {
	e := testRoom(t)

	var entry *donburi.Entry
	tags.Platform.Each(e.World, func(pe *donburi.Entry) { entry = pe })
	require.NotNil(t, entry)
	base := components.Platform.Get(entry)

	// Two full periods at 60 ticks per second.
	for i := 0; i < 120; i++ {
		UpdatePlatforms(e)
	}

	pos := components.Position.Get(entry)
	assert.Equal(t, base.BaseX, pos.X)
	assert.GreaterOrEqual(t, pos.Y, base.BaseY-16)
	assert.LessOrEqual(t, pos.Y, base.BaseY)

	shape := components.Collider.Get(entry).Shape
	assert.Equal(t, pos.Y, shape.Y)
}

func TestRespawnPlayerReturnsToSpawn(t *testing.T) {
	e := testRoom(t)

	player := firstPlayer(e.World)
	pos := components.Position.Get(player)
	pos.X, pos.Y = 40, 40
	components.Collider.Get(player).SetPosition(pos.X, pos.Y)
	phys := components.Physics.Get(player)
	phys.SpeedX = 3

	respawnPlayer(e)

	assert.Equal(t, 20.0, pos.X)
	assert.Equal(t, 20.0, pos.Y)
	assert.Zero(t, phys.SpeedX)
}
