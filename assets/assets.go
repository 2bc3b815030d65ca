package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/spaceman/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LevelNames returns the embedded level stems in play order.
func LevelNames() []string {
	_, names, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		return nil
	}
	return names
}

// LoadLevel loads an embedded level by file stem, e.g. "level1".
func LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.Load(assetFS, path.Join("levels", name+".tmx"))
}

// MustLoadLevels loads every embedded level in play order and panics if any
// of them is broken.
func MustLoadLevels() []*leveldata.Level {
	levels, names, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}

	out := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		out = append(out, levels[name])
	}
	return out
}
