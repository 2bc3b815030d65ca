package actors

import (
	"errors"

	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

var ErrNoPlayerStart = errors.New("no PlayerStart object defined in map")

// LoadLevel builds an engine world sized to level inside dw and fills it with
// the level's actors.
func LoadLevel(dw donburi.World, level *leveldata.Level, logger *log.Logger, seed int64) (*Session, error) {
	w := engine.NewWorld(dw,
		engine.WithLogger(logger.WithPrefix("engine")),
		engine.WithBounds(float64(level.Width), float64(level.Height)),
	)
	s := NewSession(w, float64(level.Width), float64(level.Height), seed)
	s.Logger = logger.WithPrefix("actors")

	if err := PopulateLevel(s, level); err != nil {
		return nil, err
	}
	return s, nil
}

// PopulateLevel creates a block for every solid tile and an actor for every
// recognised object.
func PopulateLevel(s *Session, level *leveldata.Level) error {
	if _, ok := level.PlayerStart(); !ok {
		return ErrNoPlayerStart
	}

	blocks := 0
	for _, tile := range level.Tiles {
		if !tile.Solid {
			continue
		}
		frame := tile.Frame
		if tile.Mushroom {
			frame = QuestionFrame
		}
		NewBlock(s, gamemath.V(tile.X, tile.Y), frame, tile.Mushroom)
		blocks++
	}

	for _, o := range level.Objects {
		pos := gamemath.V(o.X, o.Y)
		switch o.Kind {
		case leveldata.ObjectPlayerStart:
			if s.Player() == nil {
				NewPlayer(s, pos)
			}
		case leveldata.ObjectHazard:
			NewHazard(s, pos, o.W, o.H)
		case leveldata.ObjectSpawner:
			NewSpawner(s, pos)
		case leveldata.ObjectCoin:
			NewCoin(s, pos)
		case leveldata.ObjectStone:
			NewStone(s, pos)
		case leveldata.ObjectEndPhase:
			NewEndPhaseTrigger(s, pos, o.W, o.H)
		}
	}

	for _, name := range level.Skipped {
		s.Logger.Warn("skipping unknown level object", "level", level.Name, "name", name)
	}
	s.Logger.Info("level loaded",
		"level", level.Name,
		"blocks", blocks,
		"objects", len(level.Objects),
		"actors", s.World.ActorCount(),
	)
	return nil
}
