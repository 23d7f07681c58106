package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossworks/burrow/config"
)

func TestDefaultBehaviors(t *testing.T) {
	reg := config.DefaultBehaviors()

	code, ok := reg.Code("solid")
	require.True(t, ok)
	assert.Equal(t, 1, code)

	name, ok := reg.Name(2)
	require.True(t, ok)
	assert.Equal(t, "hazard", name)

	assert.Equal(t, []string{"hazard", "sensor", "solid"}, reg.Names())
}

func TestLoadBehaviorsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "behaviors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("behaviors:\n  lava: 9\n"), 0o644))

	reg, err := config.LoadBehaviors(path)
	require.NoError(t, err)

	code, ok := reg.Code("lava")
	require.True(t, ok)
	assert.Equal(t, 9, code)

	_, ok = reg.Code("solid")
	assert.False(t, ok, "custom table replaces the default, not merges")
}

func TestLoadBehaviorsMissingFile(t *testing.T) {
	_, err := config.LoadBehaviors(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBehaviorsRejectsReservedCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "behaviors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("behaviors:\n  ghost: 0\n"), 0o644))

	_, err := config.LoadBehaviors(path)
	assert.Error(t, err)
}

func TestLoadBehaviorsRejectsDuplicateCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "behaviors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("behaviors:\n  a: 1\n  b: 1\n"), 0o644))

	_, err := config.LoadBehaviors(path)
	assert.Error(t, err)
}

func TestMustCodePanicsOnUnknown(t *testing.T) {
	reg := config.DefaultBehaviors()
	assert.Panics(t, func() { reg.MustCode("door") })
}
