package components

import (
	"github.com/automoto/spaceman/actors"
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/yohamta/donburi"
)

// GameData is the running level: its gameplay session and where it sits in
// the level list.
type GameData struct {
	Session    *actors.Session
	Level      *leveldata.Level
	Levels     []*leveldata.Level
	LevelIndex int
	Seed       int64

	// Elapsed is simulated time in seconds since the level started.
	Elapsed float64
	// Saved is set once the level result has been persisted.
	Saved bool
}

var Game = donburi.NewComponentType[GameData]()
