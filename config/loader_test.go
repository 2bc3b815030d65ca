package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()
	assert.Equal(t, 2000.0, Physics.Gravity)
	assert.Equal(t, 750.0, Physics.MaxSpeedX)
	assert.Equal(t, 750.0, Physics.MaxSpeedY)
	assert.Equal(t, 32.0, Physics.TileSize)
	assert.Equal(t, 0.01, Physics.FallingBias)
	assert.Equal(t, 0.05, Physics.MaxDeltaTime)
	assert.Equal(t, 60, Physics.TargetFPS)
}

func TestLoadOverlaysOnlyGivenFields(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Load([]byte(`
physics:
  gravity: 1500
  falling_bias: 0.05
player:
  immortal: true
`))
	require.NoError(t, err)

	assert.Equal(t, 1500.0, Physics.Gravity)
	assert.Equal(t, 0.05, Physics.FallingBias)
	assert.Equal(t, 750.0, Physics.MaxSpeedX, "untouched field keeps its default")
	assert.True(t, Player.Immortal)
	assert.Equal(t, 7000.0, Player.MoveForce)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tile size", "physics:\n  tile_size: 0\n"},
		{"bias above one", "physics:\n  falling_bias: 2\n"},
		{"negative mass", "player:\n  mass: -1\n"},
		{"zero zoom", "camera:\n  zoom: 0\n"},
		{"malformed", "physics: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			assert.Error(t, Load([]byte(tt.yaml)))
		})
	}
}

func TestLoadFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen:\n  width: 640\n  height: 360\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 640, C.Width)
	assert.Equal(t, 360, C.Height)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveCustomPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  forward_speed: 42\n"), 0o644))

	used, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 42.0, Enemy.ForwardSpeed)
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction(" Jump ")
	require.True(t, ok)
	assert.Equal(t, ActionJump, a)
	assert.Equal(t, "jump", a.String())

	_, ok = ParseAction("fly")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ActionID(99).String())
}
