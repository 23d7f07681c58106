// Package leveldata parses TMX tile layouts into the behavior grids and
// spawn data the collision core consumes. It takes an fs.FS so callers
// can pass embed.FS (the game's bundled rooms) or os.DirFS (tools
// pointed at files on disk). No dependency on ebitengine or donburi.
package leveldata

import "github.com/mossworks/burrow/collision"

// Layout is everything the game needs from one TMX room file.
type Layout struct {
	Name string

	// Grid holds one behavior code per tile cell, resolved through the
	// behavior registry. Compile it with the cell size below to get the
	// room's collision masks.
	Grid  collision.BehaviorGrid
	CellW float64
	CellH float64

	// Pixel dimensions of the full map.
	Width  int
	Height int

	PlayerSpawns []SpawnPoint
	Platforms    []PlatformSpawn
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// PlatformSpawn is a moving platform defined in the layout's Platforms
// object group. Range and Period may be zero when the object omits the
// properties; the spawner substitutes configured defaults.
type PlatformSpawn struct {
	X, Y, W, H float64
	Range      float64
	Period     float64
}
