package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crossing.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func restoreGlobals(t *testing.T) {
	t.Helper()
	c, debug := *C, Debug
	t.Cleanup(func() {
		*C = c
		Debug = debug
	})
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 505, C.Width)
	assert.Equal(t, 5*83+171+HUD.Height, C.Height)
	assert.Equal(t, 60, C.TPS)
	assert.Equal(t, 3, Rules.StartingLives)
	assert.False(t, Debug.SkipMenu)
}

func TestLoadFileAppliesDefinedKeys(t *testing.T) {
	restoreGlobals(t)
	path := writeConfig(t, `
[display]
scale = 1.5

[debug]
hitboxes = true
`)

	require.NoError(t, LoadFile(path))

	assert.Equal(t, 1.5, C.Scale)
	assert.Equal(t, 60, C.TPS, "absent keys keep their defaults")
	assert.False(t, C.Fullscreen)
	assert.True(t, Debug.Hitboxes)
	assert.False(t, Debug.SkipMenu)
}

func TestLoadFileAllKeys(t *testing.T) {
	restoreGlobals(t)
	path := writeConfig(t, `
[display]
scale = 2.0
fullscreen = true
tps = 30

[debug]
hitboxes = true
skip_menu = true
`)

	require.NoError(t, LoadFile(path))

	assert.Equal(t, 2.0, C.Scale)
	assert.True(t, C.Fullscreen)
	assert.Equal(t, 30, C.TPS)
	assert.True(t, Debug.Hitboxes)
	assert.True(t, Debug.SkipMenu)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[display]\nwidth = 900\n", "unknown keys: display.width"},
		{"unknown table", "[rules]\nlives = 9\n", "unknown keys"},
		{"zero scale", "[display]\nscale = 0.0\n", "display.scale must be positive"},
		{"negative tps", "[display]\ntps = -5\n", "display.tps must be positive"},
		{"bad syntax", "[display\n", "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)
			err := LoadFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "restart", ActionRestart.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
