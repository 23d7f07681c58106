package leveldata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/leveldata"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="4">
 <tileset firstgid="1" name="behaviors" tilewidth="16" tileheight="16" tilecount="3" columns="0">
  <tile id="0">
   <properties>
    <property name="behavior" value="solid"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="behavior" value="hazard"/>
   </properties>
  </tile>
  <tile id="2"/>
 </tileset>
 <layer id="1" name="collision" width="4" height="3">
  <data encoding="csv">
1,1,0,0,
1,0,2,2,
3,0,0,0
  </data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="24" y="40">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Platforms">
  <object id="2" x="32" y="16" width="32" height="8">
   <properties>
    <property name="range" type="float" value="48"/>
    <property name="period" type="float" value="1.5"/>
   </properties>
  </object>
  <object id="3" x="0" y="0" width="16" height="8"/>
 </objectgroup>
</map>
`

func writeTMX(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "room.tmx"), []byte(content), 0o644))
	return dir, "room.tmx"
}

func TestLoadLayout(t *testing.T) {
	dir, name := writeTMX(t, testTMX)

	layout, err := leveldata.Load(os.DirFS(dir), name, config.DefaultBehaviors())
	require.NoError(t, err)

	assert.Equal(t, 16.0, layout.CellW)
	assert.Equal(t, 16.0, layout.CellH)
	assert.Equal(t, 64, layout.Width)
	assert.Equal(t, 48, layout.Height)

	// gid 1 = solid (code 1), gid 2 = hazard (code 2), gid 3 has no
	// behavior property and binarizes to 1.
	assert.Equal(t, collision.BehaviorGrid{
		{1, 1, 0, 0},
		{1, 0, 2, 2},
		{1, 0, 0, 0},
	}, layout.Grid)
}

func TestLoadLayoutObjects(t *testing.T) {
	dir, name := writeTMX(t, testTMX)

	layout, err := leveldata.Load(os.DirFS(dir), name, config.DefaultBehaviors())
	require.NoError(t, err)

	require.Len(t, layout.PlayerSpawns, 1)
	assert.Equal(t, 24.0, layout.PlayerSpawns[0].X)
	assert.Equal(t, 40.0, layout.PlayerSpawns[0].Y)

	require.Len(t, layout.Platforms, 2)
	assert.Equal(t, 48.0, layout.Platforms[0].Range)
	assert.Equal(t, 1.5, layout.Platforms[0].Period)
	assert.Zero(t, layout.Platforms[1].Range, "missing property left for spawner defaults")
}

func TestLoadLayoutCompiles(t *testing.T) {
	dir, name := writeTMX(t, testTMX)

	layout, err := leveldata.Load(os.DirFS(dir), name, config.DefaultBehaviors())
	require.NoError(t, err)

	set, err := collision.Compile(layout.Grid, layout.CellW, layout.CellH)
	require.NoError(t, err)

	// Top-left pair merges right, then the column below stays separate.
	assert.Len(t, set.Masks(1), 2)
	assert.Len(t, set.Masks(2), 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := leveldata.Load(os.DirFS(t.TempDir()), "absent.tmx", config.DefaultBehaviors())
	assert.Error(t, err)
}

const multiLayerTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="1">
 <tileset firstgid="1" name="behaviors" tilewidth="16" tileheight="16" tilecount="1" columns="0">
  <tile id="0"/>
 </tileset>
 <layer id="1" name="decor" width="1" height="1">
  <data encoding="csv">0</data>
 </layer>
 <layer id="2" name="backdrop" width="1" height="1">
  <data encoding="csv">1</data>
 </layer>
</map>
`

func TestLoadRequiresCollisionLayer(t *testing.T) {
	dir, name := writeTMX(t, multiLayerTMX)

	_, err := leveldata.Load(os.DirFS(dir), name, config.DefaultBehaviors())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision")
}
