package sim

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/automoto/spaceman/assets"
	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/automoto/spaceman/telemetry"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript(strings.NewReader(`
# warm up
0-120 right run

60 jump
200-210 LEFT crouch
`))
	require.NoError(t, err)
	require.Len(t, script.Steps, 3)

	assert.Equal(t, Step{From: 0, To: 120, Actions: []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionRun}}, script.Steps[0])
	assert.Equal(t, Step{From: 60, To: 61, Actions: []cfg.ActionID{cfg.ActionJump}}, script.Steps[1])
	assert.Equal(t, 210, script.Len())

	held := script.Held(60)
	assert.True(t, held[cfg.ActionMoveRight])
	assert.True(t, held[cfg.ActionJump])
	assert.False(t, held[cfg.ActionMoveLeft])

	assert.False(t, script.Held(61)[cfg.ActionJump])
	assert.False(t, script.Held(120)[cfg.ActionMoveRight])
	assert.True(t, script.Held(205)[cfg.ActionCrouch])
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"missing action", "0-10"},
		{"unknown action", "0-10 fly"},
		{"none is not an action", "0-10 none"},
		{"bad frame", "x right"},
		{"negative frame", "-5 right"},
		{"empty range", "10-10 right"},
		{"reversed range", "10-5 right"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestNilScriptHoldsNothing(t *testing.T) {
	var s *Script
	assert.Equal(t, [cfg.ActionCount]bool{}, s.Held(3))
	assert.Zero(t, s.Len())
}

func TestInputReportsPresses(t *testing.T) {
	script, err := ParseScript(strings.NewReader("1-3 jump"))
	require.NoError(t, err)
	in := NewInput(script)

	in.Advance() // frame 0
	assert.False(t, in.Pressed(cfg.ActionJump))
	in.Advance() // frame 1
	assert.True(t, in.JustPressed(cfg.ActionJump))
	in.Advance() // frame 2
	assert.True(t, in.Pressed(cfg.ActionJump))
	assert.False(t, in.JustPressed(cfg.ActionJump))
}

// corridor is a flat floor with the start on the left and an end phase at x.
func corridor(endX float64) *leveldata.Level {
	level := &leveldata.Level{Name: "corridor", Width: 640, Height: 320, TileSize: 32}
	for x := 16.0; x < 640; x += 32 {
		level.Tiles = append(level.Tiles, leveldata.Tile{X: x, Y: 304, Solid: true})
	}
	level.Objects = append(level.Objects,
		leveldata.Object{Kind: leveldata.ObjectPlayerStart, Name: "PlayerStart", X: 48, Y: 256},
		leveldata.Object{Kind: leveldata.ObjectEndPhase, Name: "EndPhase", X: endX, Y: 240, W: 64, H: 96},
	)
	return level
}

func TestRunIdleOnEmbeddedLevel(t *testing.T) {
	level, err := assets.LoadLevel("level1")
	require.NoError(t, err)

	var buf bytes.Buffer
	r, err := NewRunner(Options{
		Level:  level,
		Frames: 120,
		Seed:   7,
		Window: 60,
		Output: telemetry.NewOutput(&buf),
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFrames, res.Outcome)
	assert.Equal(t, 120, res.Frames)
	assert.InDelta(t, 2.0, res.SimSeconds, 1e-9)
	require.Len(t, res.Windows, 2)
	assert.Equal(t, uint64(120), res.Windows[1].WindowEndFrame)
	assert.True(t, r.Session().Player().IsOnGround())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
}

func TestRunReachesEndPhase(t *testing.T) {
	script, err := ParseScript(strings.NewReader("0-600 right"))
	require.NoError(t, err)

	r, err := NewRunner(Options{Level: corridor(400), Script: script, Logger: quietLogger()})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeComplete, res.Outcome)
	assert.Less(t, res.Frames, 600)
	assert.Greater(t, res.Player.X, 300.0)
	assert.NotEmpty(t, res.Windows, "a partial window is flushed")
}

func TestRunStopsWhenPlayerFalls(t *testing.T) {
	level := corridor(600)
	level.Tiles = nil

	r, err := NewRunner(Options{Level: level, Frames: 600, Logger: quietLogger()})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeDied, res.Outcome)
	assert.Equal(t, "fall", res.KilledBy)
	assert.Less(t, res.Frames, 600)
}

func TestRunHonoursCancellation(t *testing.T) {
	r, err := NewRunner(Options{Level: corridor(600), Frames: 1000, TickRate: 1000, Logger: quietLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeStopped, res.Outcome)
	assert.Zero(t, res.Frames)
}

func TestStopEndsRun(t *testing.T) {
	r, err := NewRunner(Options{Level: corridor(600), Frames: 1000, Logger: quietLogger()})
	require.NoError(t, err)

	r.Stop()
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeStopped, res.Outcome)
}

func TestNewRunnerErrors(t *testing.T) {
	_, err := NewRunner(Options{})
	assert.Error(t, err)

	_, err = NewRunner(Options{Level: &leveldata.Level{Name: "empty", Width: 64, Height: 64, TileSize: 32}, Logger: quietLogger()})
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "complete", OutcomeComplete.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
