package components

import (
	"github.com/automoto/spaceman/engine"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all
// actions. It satisfies engine.Input through the embedded StaticInput.
type InputData struct {
	engine.StaticInput
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
