package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// LevelResult is how a level run ended.
type LevelResult struct {
	LevelIndex int
	Level      string
	Coins      int
	Seconds    float64
	KilledBy   string
	NewBest    bool
}

// NewUpdateLevelState creates a system that watches the running level and
// hands off to onComplete when the end phase is reached or to onGameOver once
// the player has finished dying. The result is saved once before either
// callback runs.
func NewUpdateLevelState(onComplete, onGameOver func(LevelResult)) ecs.System {
	return func(e *ecs.ECS) {
		game := getGame(e)
		if game == nil || game.Saved {
			return
		}
		s := game.Session

		result := LevelResult{
			LevelIndex: game.LevelIndex,
			Level:      game.Level.Name,
			Coins:      s.Coins(),
			Seconds:    game.Elapsed,
			KilledBy:   s.KilledBy(),
		}

		switch {
		case s.Complete():
			game.Saved = true
			result.NewBest = recordClear(result.Level, result.Coins, result.Seconds)
			onComplete(result)
		case s.PlayerDead():
			game.Saved = true
			recordDeath(result.Level, result.Coins)
			onGameOver(result)
		}
	}
}
