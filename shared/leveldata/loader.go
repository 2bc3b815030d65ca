package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (the game) or os.DirFS (the simulator).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Title:    levelMap.Properties.GetString("title"),
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
		TileSize: levelMap.TileWidth,
	}

	parseTiles(levelMap, level)
	parseObjects(levelMap, level)
	return level, nil
}

func parseTiles(levelMap *tiled.Map, level *Level) {
	size := float64(level.TileSize)
	for _, layer := range levelMap.Layers {
		if layer.Name == "Background" {
			continue
		}
		solid := !layer.Properties.GetBool("decoration")

		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var mushroom bool
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					mushroom = tilesetTile.Properties.GetBool("mushroom")
				}

				level.Tiles = append(level.Tiles, Tile{
					X:        float64(x)*size + size/2,
					Y:        float64(y)*size + size/2,
					Frame:    int(tile.ID),
					Solid:    solid,
					Mushroom: mushroom,
					Layer:    layer.Name,
					FlipH:    tile.HorizontalFlip,
					FlipV:    tile.VerticalFlip,
					FlipD:    tile.DiagonalFlip,
				})
			}
		}
	}
}

// parseObjects places every object by the centre of its rectangle. Tile
// objects are anchored bottom-left in Tiled, so their y is shifted up first.
func parseObjects(levelMap *tiled.Map, level *Level) {
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			kind, ok := objectNames[o.Name]
			if !ok {
				level.Skipped = append(level.Skipped, o.Name)
				continue
			}

			y := o.Y
			if o.GID != 0 {
				y -= o.Height
			}
			level.Objects = append(level.Objects, Object{
				Kind: kind,
				Name: o.Name,
				X:    o.X + o.Width/2,
				Y:    y + o.Height/2,
				W:    o.Width,
				H:    o.Height,
			})
		}
	}
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by file stem, plus the sorted stems.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		level, err := Load(fsys, match)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
