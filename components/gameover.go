package components

import "github.com/yohamta/donburi"

// GameOverData describes how the last run ended
type GameOverData struct {
	KilledBy   string
	Coins      int
	LevelIndex int
}

// GameOver is the component type for the game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
