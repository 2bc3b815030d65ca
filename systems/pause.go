package systems

import (
	"github.com/automoto/spaceman/archetypes"
	"github.com/automoto/spaceman/components"
	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause and the debug overlay.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if input.JustPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
	if input.JustPressed(cfg.ActionDebug) {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.BlackOverlay,
		false,
	)

	title := "PAUSED"
	titleWidth := len(title) * 20 // Approximate width for title font
	text.Draw(screen, title, fonts.Title.Get(), int((width-float64(titleWidth))/2), int(height/2), cfg.White)

	hint := getPauseHint(getOrCreateInput(e).LastInputMethod)
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-12, cfg.White)
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Start: Resume"
	}
	return "Esc: Resume   F1: Debug"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// IsPaused reports whether the scene is paused.
func IsPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		archetypes.Pause.Spawn(e)
	}
	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}

// GetOrCreateDebug returns the singleton Debug component, seeded from config.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(e.World); !ok {
		ent := archetypes.Debug.Spawn(e)
		components.Debug.SetValue(ent, components.DebugData{
			Enabled:   cfg.Debug.Enabled,
			ShowCells: cfg.Debug.ShowCells,
		})
	}
	ent, _ := components.Debug.First(e.World)
	return components.Debug.Get(ent)
}
