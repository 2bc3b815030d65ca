package factory

import (
	"fmt"

	"github.com/automoto/spaceman/actors"
	"github.com/automoto/spaceman/archetypes"
	"github.com/automoto/spaceman/components"
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame loads levels[index] into the scene's world and spawns the game
// singleton that owns it.
func CreateGame(ecs *ecs.ECS, levels []*leveldata.Level, index int, seed int64, logger *log.Logger) (*donburi.Entry, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}
	if index < 0 || index >= len(levels) {
		index = 0
	}
	level := levels[index]

	session, err := actors.LoadLevel(ecs.World, level, logger, seed)
	if err != nil {
		return nil, fmt.Errorf("create level %s: %w", level.Name, err)
	}

	game := archetypes.Game.Spawn(ecs)
	components.Game.Set(game, &components.GameData{
		Session:    session,
		Level:      level,
		Levels:     levels,
		LevelIndex: index,
		Seed:       seed,
	})
	return game, nil
}
