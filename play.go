package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/spaceman/assets"
	"github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/fonts"
	"github.com/automoto/spaceman/scenes"
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/automoto/spaceman/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Start the game at the first level, or at --level.

Controls:
  A/D or Arrows   - Move
  Space/W/Up      - Jump (twice for a double jump)
  S/Down          - Crouch
  Shift           - Run
  J/X             - Shoot
  K/C             - Spray gas
  Esc/P           - Pause
  F1              - Debug overlay`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start at (default: config level.first)")
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(campaign scenes.Campaign, levelIndex int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, campaign, levelIndex)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	start := flagLevel
	if start == "" {
		start = config.Level.First
	}
	index := levelIndex(levels, start)
	if index < 0 {
		return fmt.Errorf("unknown level %q", start)
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Warn("falling back to the bitmap font", "err", err)
	}

	// Persistence failures are not fatal
	_ = systems.InitPersistence(logger)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Spaceman")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Physics.TargetFPS)

	campaign := scenes.Campaign{Levels: levels, Seed: flagSeed, Logger: logger}
	return ebiten.RunGame(NewGame(campaign, index))
}

// loadLevels reads levels from config level.directory when set, or the
// bundled ones.
func loadLevels() ([]*leveldata.Level, error) {
	if dir := config.Level.Directory; dir != "" {
		byName, names, err := leveldata.LoadAll(os.DirFS(dir), ".")
		if err != nil {
			return nil, err
		}
		out := make([]*leveldata.Level, 0, len(names))
		for _, name := range names {
			out = append(out, byName[name])
		}
		return out, nil
	}

	var out []*leveldata.Level
	for _, name := range assets.LevelNames() {
		level, err := assets.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		out = append(out, level)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no bundled levels")
	}
	return out, nil
}

func levelIndex(levels []*leveldata.Level, name string) int {
	for i, l := range levels {
		if l.Name == name {
			return i
		}
	}
	return -1
}
