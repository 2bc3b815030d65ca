package config

import "strings"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionRun
	ActionShoot
	ActionGas
	ActionPause
	ActionDebug
	ActionConfirm
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionJump:      "jump",
	ActionCrouch:    "crouch",
	ActionRun:       "run",
	ActionShoot:     "shoot",
	ActionGas:       "gas",
	ActionPause:     "pause",
	ActionDebug:     "debug",
	ActionConfirm:   "confirm",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves an action by the name used in input scripts.
func ParseAction(name string) (ActionID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return ActionID(i), true
		}
	}
	return ActionNone, false
}
