package components

import "github.com/yohamta/donburi"

// DebugData toggles the collider overlay
type DebugData struct {
	Enabled   bool
	ShowCells bool
}

var Debug = donburi.NewComponentType[DebugData]()
