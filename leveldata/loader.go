package leveldata

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lafriks/go-tiled"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/config"
)

// collisionLayerName is the tile layer holding collision data. Maps with
// a single tile layer can omit the name; maps with several must name one
// of them this.
const collisionLayerName = "collision"

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "leveldata"})

// Load parses a TMX file into a Layout. Tiles are mapped to behavior
// codes through their tileset's "behavior" property and the given
// registry; tiles without the property (or with a name the registry
// doesn't know) fall back to code 1, which degrades to the plain
// binary occupancy rule for maps that carry no behavior data at all.
func Load(fsys fs.FS, tmxPath string, reg *config.BehaviorRegistry) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layer, err := pickCollisionLayer(levelMap)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   tmxPath,
		CellW:  float64(levelMap.TileWidth),
		CellH:  float64(levelMap.TileHeight),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	layout.Grid = make(collision.BehaviorGrid, levelMap.Height)
	warned := map[string]bool{}
	for y := 0; y < levelMap.Height; y++ {
		layout.Grid[y] = make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			layout.Grid[y][x] = behaviorCode(tile, reg, warned)
		}
	}

	parseObjects(levelMap, layout)

	logger.Debug("parsed layout",
		"path", tmxPath,
		"size", fmt.Sprintf("%dx%d", levelMap.Width, levelMap.Height),
		"spawns", len(layout.PlayerSpawns),
		"platforms", len(layout.Platforms))

	return layout, nil
}

// pickCollisionLayer returns the layer named "collision", or the only
// tile layer when the map has exactly one.
func pickCollisionLayer(levelMap *tiled.Map) (*tiled.Layer, error) {
	if len(levelMap.Layers) == 1 {
		return levelMap.Layers[0], nil
	}
	for _, layer := range levelMap.Layers {
		if layer.Name == collisionLayerName {
			return layer, nil
		}
	}
	return nil, fmt.Errorf("no %q tile layer among %d layers", collisionLayerName, len(levelMap.Layers))
}

// behaviorCode resolves one tile to its behavior code. Unknown behavior
// names are logged once per name and binarized to 1 rather than dropped,
// so a typo in a tileset shows up as an over-solid room instead of a
// hole in the collision.
func behaviorCode(tile *tiled.LayerTile, reg *config.BehaviorRegistry, warned map[string]bool) int {
	name := ""
	if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
		name = tilesetTile.Properties.GetString("behavior")
	}
	if name == "" {
		return 1
	}
	if code, ok := reg.Code(name); ok {
		return code
	}
	if !warned[name] {
		warned[name] = true
		logger.Warn("unknown behavior name, treating as solid", "behavior", name)
	}
	return 1
}

func parseObjects(levelMap *tiled.Map, layout *Layout) {
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				layout.PlayerSpawns = append(layout.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "Platforms":
			for _, o := range og.Objects {
				layout.Platforms = append(layout.Platforms, PlatformSpawn{
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					Range:  o.Properties.GetFloat("range"),
					Period: o.Properties.GetFloat("period"),
				})
			}
		}
	}
}
