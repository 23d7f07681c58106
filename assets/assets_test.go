package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossworks/burrow/assets"
	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/config"
)

func TestBundledRoomsLoadAndCompile(t *testing.T) {
	layouts := assets.MustLoadLayouts(config.DefaultBehaviors())
	require.Len(t, layouts, 2)

	for _, layout := range layouts {
		set, err := collision.Compile(layout.Grid, layout.CellW, layout.CellH)
		require.NoError(t, err, layout.Name)

		assert.NotZero(t, set.Len(), layout.Name)
		assert.NotEmpty(t, layout.PlayerSpawns, layout.Name)

		// Every bundled room uses the shipped behavior vocabulary.
		reg := config.DefaultBehaviors()
		for _, code := range set.Codes() {
			_, ok := reg.Name(code)
			assert.True(t, ok, "room %s uses unregistered code %d", layout.Name, code)
		}
	}
}
