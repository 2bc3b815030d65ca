package actors

import (
	"io"
	"testing"

	"github.com/automoto/spaceman/assets"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	level, err := assets.LoadLevel("level1")
	require.NoError(t, err)

	s, err := LoadLevel(donburi.NewWorld(), level, log.New(io.Discard), 1)
	require.NoError(t, err)

	p := s.Player()
	require.NotNil(t, p)
	start, _ := level.PlayerStart()
	assert.Equal(t, start.X, p.Position().X)
	assert.Equal(t, float64(level.Width), s.Width)

	blocks, spawners := 0, 0
	for _, a := range s.World.Actors() {
		switch a.Behavior().(type) {
		case *Block:
			blocks++
		case *Spawner:
			spawners++
		}
	}
	solid := 0
	for _, tile := range level.Tiles {
		if tile.Solid {
			solid++
		}
	}
	assert.Equal(t, solid, blocks)
	assert.Equal(t, level.Count(leveldata.ObjectSpawner), spawners)

	for i := 0; i < 60; i++ {
		s.World.ProcessInput(engine.NoInput)
		s.World.Update(1.0 / 60.0)
	}
	assert.True(t, p.IsOnGround(), "the player lands on the ground row")
	assert.False(t, p.Dying())
}

func TestMushroomTilesBecomeQuestionBlocks(t *testing.T) {
	level := &leveldata.Level{
		Name: "tiny", Width: 320, Height: 320, TileSize: 32,
		Tiles: []leveldata.Tile{
			{X: 16, Y: 304, Frame: 3, Solid: true, Mushroom: true},
			{X: 48, Y: 304, Frame: 5, Solid: false},
		},
		Objects: []leveldata.Object{
			{Kind: leveldata.ObjectPlayerStart, X: 16, Y: 100},
		},
	}

	s, err := LoadLevel(donburi.NewWorld(), level, log.New(io.Discard), 1)
	require.NoError(t, err)

	var blocks []*Block
	for _, a := range s.World.Actors() {
		if b, ok := a.Behavior().(*Block); ok {
			blocks = append(blocks, b)
		}
	}
	require.Len(t, blocks, 1, "decoration tiles do not become blocks")
	assert.Equal(t, QuestionFrame, blocks[0].Frame())
	assert.True(t, blocks[0].HasMushroom())
}

func TestLoadLevelNeedsPlayerStart(t *testing.T) {
	level := &leveldata.Level{Name: "empty", Width: 320, Height: 320, TileSize: 32}

	_, err := LoadLevel(donburi.NewWorld(), level, log.New(io.Discard), 1)
	assert.ErrorIs(t, err, ErrNoPlayerStart)
}
