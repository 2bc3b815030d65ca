package systems

import (
	"github.com/automoto/spaceman/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// getGame returns the running level, or nil before one is created.
func getGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	game := components.Game.Get(entry)
	if game.Session == nil {
		return nil
	}
	return game
}

// UpdateWorld feeds this tick's input to the actors and steps the engine by
// one fixed tick.
func UpdateWorld(e *ecs.ECS) {
	game := getGame(e)
	if game == nil {
		return
	}
	input := getOrCreateInput(e)

	w := game.Session.World
	w.ProcessInput(&input.StaticInput)
	game.Elapsed += w.Update(1 / float64(ebiten.TPS()))
}
