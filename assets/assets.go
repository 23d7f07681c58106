// Package assets bundles the rooms that ship with the demo game.
package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/leveldata"
)

//go:embed all:rooms
var roomFS embed.FS

// MustLoadLayouts parses every bundled .tmx room, in filename order.
// Bundled rooms are part of the build, so a parse failure is fatal.
func MustLoadLayouts(reg *config.BehaviorRegistry) []*leveldata.Layout {
	entries, err := roomFS.ReadDir("rooms")
	if err != nil {
		panic(fmt.Sprintf("read rooms directory: %v", err))
	}

	var layouts []*leveldata.Layout
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".tmx" {
			continue
		}
		layout, err := leveldata.Load(roomFS, filepath.Join("rooms", entry.Name()), reg)
		if err != nil {
			panic(fmt.Sprintf("load room %s: %v", entry.Name(), err))
		}
		layouts = append(layouts, layout)
	}

	if len(layouts) == 0 {
		panic("no room files bundled under assets/rooms")
	}

	sort.Slice(layouts, func(i, j int) bool { return layouts[i].Name < layouts[j].Name })
	return layouts
}
