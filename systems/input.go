package systems

import (
	"github.com/automoto/spaceman/archetypes"
	"github.com/automoto/spaceman/components"
	cfg "github.com/automoto/spaceman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// binding maps one action to the keys and standard gamepad buttons that
// trigger it.
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionMoveLeft: {
		keys:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		keys:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionCrouch: {
		keys:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionRun: {
		keys:    []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionShoot: {
		keys:    []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionGas: {
		keys:    []ebiten.Key{ebiten.KeyK, ebiten.KeyC},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionPause: {
		keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionDebug: {
		keys: []ebiten.Key{ebiten.KeyF1},
	},
	cfg.ActionConfirm: {
		keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

const analogDeadzone = 0.3

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the input singleton.
// Must run before UpdateWorld.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	var next [cfg.ActionCount]bool
	var keyboardUsed, gamepadUsed bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, b := range bindings {
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				next[action] = true
				keyboardUsed = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range b.buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					next[action] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into the directional actions
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -analogDeadzone {
			next[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if h > analogDeadzone {
			next[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
		if v > analogDeadzone {
			next[cfg.ActionCrouch] = true
			gamepadUsed = true
		}
	}

	input.Advance(next)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		archetypes.Input.Spawn(e)
	}
	entry, _ := components.Input.First(e.World)
	return components.Input.Get(entry)
}
