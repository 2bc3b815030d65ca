package scenes

import (
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/charmbracelet/log"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Campaign is what every scene needs to start or restart a level.
type Campaign struct {
	Levels []*leveldata.Level
	Seed   int64
	Logger *log.Logger
}

// next returns the index after i, wrapping to the first level.
func (c Campaign) next(i int) int {
	if len(c.Levels) == 0 {
		return 0
	}
	return (i + 1) % len(c.Levels)
}
